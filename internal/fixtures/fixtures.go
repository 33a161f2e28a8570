// Package fixtures holds the journal's built-in datasets. Every accessor
// returns a deep copy so callers can never mutate the shared records.
package fixtures

import "github.com/julianstephens/journey/internal/models"

var dailyEntries = []models.DailyEntry{
	{
		Date:             "2024-01-15",
		TasksCompleted:   5,
		TotalTasks:       7,
		HasReading:       true,
		HasPhilosophical: false,
		Mood:             models.MoodGood,
	},
	{
		Date:             "2024-01-14",
		TasksCompleted:   3,
		TotalTasks:       5,
		HasReading:       true,
		HasPhilosophical: true,
		Mood:             models.MoodExcellent,
	},
	{
		Date:             "2024-01-13",
		TasksCompleted:   2,
		TotalTasks:       4,
		HasReading:       false,
		HasPhilosophical: true,
		Mood:             models.MoodNeutral,
	},
}

var updates = []models.Update{
	{
		ID:   "1",
		Date: "2024-01-15",
		Reading: models.Reading{
			Book:     "Clean Code by Robert Martin",
			Pages:    25,
			Insights: "Learned about meaningful naming conventions and their impact on code readability.",
		},
		DSA: models.Practice{
			Problems:     []string{"Two Sum", "Valid Parentheses"},
			Concepts:     []string{"Hash Maps", "Stack Operations"},
			TimeSpentMin: 90,
		},
		Mood: models.UpdateMoodExcellent,
	},
	{
		ID:   "2",
		Date: "2024-01-14",
		Reading: models.Reading{
			Book:     "Clean Code by Robert Martin",
			Pages:    22,
			Insights: "Functions should be small and do one thing well. The concept of single responsibility principle.",
		},
		DSA: models.Practice{
			Problems:     []string{"Reverse Linked List", "Palindrome Number"},
			Concepts:     []string{"Linked Lists", "Two Pointers"},
			TimeSpentMin: 75,
		},
		Mood: models.UpdateMoodGood,
	},
	{
		ID:   "3",
		Date: "2024-01-13",
		Reading: models.Reading{
			Book:     "Clean Code by Robert Martin",
			Pages:    18,
			Insights: "Code comments should explain why, not what. Clean code is self-documenting.",
		},
		DSA: models.Practice{
			Problems:     []string{"Binary Search", "First Bad Version"},
			Concepts:     []string{"Binary Search", "Array Manipulation"},
			TimeSpentMin: 60,
		},
		Mood: models.UpdateMoodOkay,
	},
}

var taskDays = []models.TaskDay{
	{
		Date: "2024-01-15",
		Completed: []models.Task{
			{ID: "1", Title: "Solved Binary Tree Inorder Traversal", Completed: true, Category: models.CategoryDSA, Priority: models.PriorityHigh},
			{ID: "2", Title: "Read 20 pages of 'Clean Code'", Completed: true, Category: models.CategoryReading, Priority: models.PriorityMedium},
			{ID: "3", Title: "Morning workout", Completed: true, Category: models.CategoryGeneral, Priority: models.PriorityLow},
		},
		Planned: []models.Task{
			{ID: "4", Title: "Study Dynamic Programming", Category: models.CategoryDSA, Priority: models.PriorityHigh},
			{ID: "5", Title: "Write learning notes on Trees", Category: models.CategoryGeneral, Priority: models.PriorityMedium},
			{ID: "6", Title: "Read philosophy article", Category: models.CategoryReading, Priority: models.PriorityLow},
		},
		Reflection: "Great progress today! Binary tree traversal clicked finally. Need to focus more on DP concepts tomorrow.",
	},
	{
		Date: "2024-01-14",
		Completed: []models.Task{
			{ID: "7", Title: "Solved 3 Array problems", Completed: true, Category: models.CategoryDSA, Priority: models.PriorityHigh},
			{ID: "8", Title: "Finished chapter on Functions", Completed: true, Category: models.CategoryReading, Priority: models.PriorityMedium},
		},
		Planned: []models.Task{
			{ID: "9", Title: "Review Hash Tables", Category: models.CategoryDSA, Priority: models.PriorityMedium},
			{ID: "10", Title: "Plan weekly goals", Category: models.CategoryGeneral, Priority: models.PriorityLow},
		},
		Reflection: "Solid day for problem solving. Arrays are getting easier with practice.",
	},
}

var articles = []models.Article{
	{
		ID:          "1",
		Title:       "Understanding Dynamic Programming: From Recursion to Optimization",
		Excerpt:     "A deep dive into dynamic programming concepts, starting from basic recursion and building up to optimized solutions. We'll explore memoization, tabulation, and when to use each approach.",
		Category:    "Data Structures & Algorithms",
		ReadTimeMin: 8,
		Date:        "2024-01-15",
		Tags:        []string{"Dynamic Programming", "Optimization", "Algorithms"},
	},
	{
		ID:          "2",
		Title:       "Binary Trees: Traversal Patterns and Problem-Solving Strategies",
		Excerpt:     "Exploring different tree traversal methods and how they apply to solving complex problems. From basic inorder/preorder/postorder to level-order traversal and their use cases.",
		Category:    "Data Structures & Algorithms",
		ReadTimeMin: 6,
		Date:        "2024-01-14",
		Tags:        []string{"Binary Trees", "Traversal", "Problem Solving"},
	},
	{
		ID:          "3",
		Title:       "System Design Fundamentals: Scalability and Load Balancing",
		Excerpt:     "Key concepts in designing scalable systems. Understanding horizontal vs vertical scaling, load balancing strategies, and how to design systems that can handle millions of users.",
		Category:    "System Design",
		ReadTimeMin: 12,
		Date:        "2024-01-13",
		Tags:        []string{"System Design", "Scalability", "Architecture"},
	},
	{
		ID:          "4",
		Title:       "React Patterns: Composition vs Inheritance",
		Excerpt:     "Exploring React's composition model and why it's preferred over inheritance. Practical examples of how to build flexible and reusable components using composition patterns.",
		Category:    "Frontend Development",
		ReadTimeMin: 10,
		Date:        "2024-01-12",
		Tags:        []string{"React", "Design Patterns", "Component Architecture"},
	},
}

var writings = []models.Writing{
	{
		ID:          "1",
		Title:       "On the Nature of Learning and Curiosity",
		Excerpt:     "What drives us to learn? Is it the satisfaction of understanding, the joy of discovery, or something deeper? Exploring the philosophical underpinnings of human curiosity and the eternal quest for knowledge.",
		Category:    models.WritingPhilosophy,
		Date:        "2024-01-15",
		Mood:        models.WritingContemplative,
		ReadTimeMin: 5,
	},
	{
		ID:          "2",
		Title:       "Lessons from 'Atomic Habits': Small Changes, Big Impact",
		Excerpt:     "James Clear's insights on habit formation have transformed how I approach daily routines. Here's how 1% improvements compound over time and why systems beat goals every time.",
		Category:    models.WritingBookInsights,
		Date:        "2024-01-14",
		Mood:        models.WritingInspired,
		ReadTimeMin: 7,
	},
	{
		ID:          "3",
		Title:       "The Art of Slow Living in a Fast World",
		Excerpt:     "In our hyperconnected age, there's wisdom in slowing down. Reflecting on mindfulness, intentional living, and finding peace in the present moment despite the chaos around us.",
		Category:    models.WritingReflection,
		Date:        "2024-01-13",
		Mood:        models.WritingThoughtful,
		ReadTimeMin: 6,
	},
	{
		ID:          "4",
		Title:       "Why Stories Matter: Narrative and Human Connection",
		Excerpt:     "From ancient myths to modern novels, stories shape how we understand ourselves and others. Exploring why humans are fundamentally storytelling creatures and what this means for our digital age.",
		Category:    models.WritingNonAcademic,
		Date:        "2024-01-12",
		Mood:        models.WritingCurious,
		ReadTimeMin: 8,
	},
}

var dayDetails = []models.DayDetail{
	{
		Date: "2024-01-15",
		Mood: models.MoodGood,
		Completed: []models.Task{
			{ID: "1", Title: "Binary Search Tree Implementation", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityHigh, TimeSpent: "2h"},
			{ID: "2", Title: "Dynamic Programming - Coin Change", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityMedium, TimeSpent: "1.5h"},
			{ID: "3", Title: "Read Chapter 3 - Clean Code", Completed: true, Category: models.CategoryDetailReading, Priority: models.PriorityMedium, TimeSpent: "45min"},
		},
		Planned: []models.Task{
			{ID: "4", Title: "Graph Algorithms - DFS/BFS", Category: models.CategoryDetailDSA, Priority: models.PriorityHigh},
			{ID: "5", Title: "System Design Reading", Category: models.CategoryDetailReading, Priority: models.PriorityLow},
		},
		Articles: []models.LearningNote{
			{
				ID:         "1",
				Title:      "Understanding Binary Search Trees",
				Summary:    "Deep dive into BST operations, balancing, and real-world applications",
				Tags:       []string{"data-structures", "algorithms", "trees"},
				TimeToRead: "5 min",
				Insight:    "The key insight was understanding how self-balancing trees maintain O(log n) operations even with skewed input data.",
			},
		},
		Writings: []models.Reflection{
			{
				ID:         "1",
				Title:      "On the Nature of Learning",
				Summary:    "Reflection on the continuous process of knowledge acquisition and its impact on personal growth",
				Tags:       []string{"learning", "growth", "philosophy"},
				TimeToRead: "3 min",
				KeyThought: "Learning is not just about accumulating information, but about transforming our understanding of the world.",
			},
		},
		Reflection: "Today was productive. The BST implementation went smoother than expected, and I'm starting to see patterns in tree-based algorithms. Need to focus more on system design concepts tomorrow.",
	},
	{
		Date: "2024-01-14",
		Mood: models.MoodExcellent,
		Completed: []models.Task{
			{ID: "6", Title: "Reverse Linked List", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityHigh, TimeSpent: "40min"},
			{ID: "7", Title: "Palindrome Number", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityMedium, TimeSpent: "35min"},
			{ID: "8", Title: "Read Chapter 2 - Clean Code", Completed: true, Category: models.CategoryDetailReading, Priority: models.PriorityMedium, TimeSpent: "1h"},
		},
		Planned: []models.Task{
			{ID: "9", Title: "Review Hash Tables", Category: models.CategoryDetailDSA, Priority: models.PriorityMedium},
			{ID: "10", Title: "Load Balancing Primer", Category: models.CategoryDetailSystemDesign, Priority: models.PriorityLow},
		},
		Articles: []models.LearningNote{
			{
				ID:         "2",
				Title:      "Two Pointers on Linked Lists",
				Summary:    "Fast and slow pointers for cycle detection, middle nodes and in-place reversal",
				Tags:       []string{"linked-lists", "two-pointers"},
				TimeToRead: "4 min",
				Insight:    "Reversal only needs three references; drawing the pointer moves first removed every off-by-one mistake.",
			},
		},
		Writings: []models.Reflection{
			{
				ID:         "2",
				Title:      "Small Changes, Big Impact",
				Summary:    "Notes on habit formation after a week of daily practice",
				Tags:       []string{"habits", "books"},
				TimeToRead: "4 min",
				KeyThought: "Systems beat goals: showing up every day matters more than any single breakthrough.",
			},
		},
		Reflection: "Everything clicked today. Two pointer problems feel natural now and the reading tied in well with the practice.",
	},
	{
		Date: "2024-01-13",
		Mood: models.MoodNeutral,
		Completed: []models.Task{
			{ID: "11", Title: "Binary Search", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityHigh, TimeSpent: "30min"},
			{ID: "12", Title: "First Bad Version", Completed: true, Category: models.CategoryDetailDSA, Priority: models.PriorityMedium, TimeSpent: "30min"},
		},
		Planned: []models.Task{
			{ID: "13", Title: "Scalability Basics", Category: models.CategoryDetailSystemDesign, Priority: models.PriorityMedium},
			{ID: "14", Title: "Read Chapter 2 - Clean Code", Category: models.CategoryDetailReading, Priority: models.PriorityLow},
		},
		Writings: []models.Reflection{
			{
				ID:         "3",
				Title:      "The Art of Slow Living",
				Summary:    "Mindfulness and intentional living in a hyperconnected age",
				Tags:       []string{"reflection", "mindfulness"},
				TimeToRead: "3 min",
				KeyThought: "Slowing down is not falling behind; it is choosing what deserves attention.",
			},
		},
		Reflection: "A slower day. Binary search variants were fine but I skipped reading. Tomorrow starts with the book.",
	},
}

var profile = models.Profile{
	Name:     "Your Name",
	Headline: "Software Engineer & DSA Enthusiast",
	Skills:   []string{"Data Structures", "Algorithms", "Daily Learning"},
	Bio:      "Welcome to my learning journey! I'm passionate about mastering data structures and algorithms while maintaining consistent reading habits. This site tracks my daily progress and insights.",
	Email:    "your.email@example.com",
	Links: []models.Link{
		{Label: "GitHub", URL: "https://github.com/"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/"},
	},
	Stats: models.ProfileStats{
		DayStreak:      125,
		ProblemsSolved: 48,
		BooksRead:      12,
	},
}

var progress = models.Progress{
	CurrentStreak:     125,
	WeeklyGoal:        7,
	CompletedThisWeek: 5,
	MonthlyProblems:   48,
	MonthlyGoal:       60,
	Highlights: models.Highlights{
		NewConcepts:     15,
		BooksCompleted:  3,
		ConsistencyRate: 92,
	},
}

func DailyEntries() []models.DailyEntry {
	return append([]models.DailyEntry(nil), dailyEntries...)
}

func Updates() []models.Update {
	return models.CloneAll(updates)
}

func TaskDays() []models.TaskDay {
	return models.CloneAll(taskDays)
}

func Articles() []models.Article {
	return models.CloneAll(articles)
}

func Writings() []models.Writing {
	return append([]models.Writing(nil), writings...)
}

func DayDetails() []models.DayDetail {
	return models.CloneAll(dayDetails)
}

func Profile() models.Profile {
	return profile.Clone()
}

func Progress() models.Progress {
	return progress
}

// Dataset bundles every fixture into one value.
func Dataset() models.Dataset {
	return models.Dataset{
		Profile:  Profile(),
		Progress: Progress(),
		Entries:  DailyEntries(),
		Days:     DayDetails(),
		Updates:  Updates(),
		TaskDays: TaskDays(),
		Articles: Articles(),
		Writings: Writings(),
	}
}
