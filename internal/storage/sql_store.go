package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/journey/internal/fixtures"
	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/migration"
	"github.com/julianstephens/journey/internal/models"
	"github.com/julianstephens/journey/migrations"
)

type dialect string

const (
	dialectSQLite   dialect = "sqlite"
	dialectPostgres dialect = "postgres"
)

// SQLStore keeps the journal in a SQL database. SQLite and PostgreSQL share
// the queries; only placeholders and the driver differ.
type SQLStore struct {
	dialect dialect
	dsn     string
	db      *sql.DB
	seed    models.Dataset
}

func NewSQLiteStore(path string) *SQLStore {
	return &SQLStore{dialect: dialectSQLite, dsn: path, seed: fixtures.Dataset()}
}

func NewPostgresStore(connStr string) *SQLStore {
	return &SQLStore{dialect: dialectPostgres, dsn: connStr, seed: fixtures.Dataset()}
}

// WithSeed replaces the dataset Init writes into a fresh database.
func (s *SQLStore) WithSeed(ds models.Dataset) *SQLStore {
	s.seed = ds
	return s
}

// Init opens the database, applies migrations and seeds the dataset.
func (s *SQLStore) Init() error {
	if s.dialect == dialectSQLite {
		if err := os.MkdirAll(filepath.Dir(s.dsn), 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := s.open(); err != nil {
		return err
	}

	ctx := context.Background()
	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(ctx, func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := s.Seed(ctx, s.seed); err != nil {
		return fmt.Errorf("failed to seed journal: %w", err)
	}
	return nil
}

// Load opens an already initialized database and checks its schema version.
func (s *SQLStore) Load() error {
	if s.db != nil {
		return nil
	}
	if s.dialect == dialectSQLite {
		if _, err := os.Stat(s.dsn); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'journey init' first")
		}
	}
	if err := s.open(); err != nil {
		return err
	}
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion(context.Background())
}

func (s *SQLStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open(string(s.dialect), s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if s.dialect == dialectPostgres {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.Ping(); err != nil {
			db.Close()
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}
	s.db = db
	return nil
}

func (s *SQLStore) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrations.FS, string(s.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to access %s migrations: %w", s.dialect, err)
	}
	return migration.NewRunner(s.db, sub).WithRebind(s.rebind), nil
}

// rebind rewrites '?' placeholders to $n for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetDB returns the underlying handle, nil before Init/Load.
func (s *SQLStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLStore) GetConfigPath() string {
	if s.dialect == dialectPostgres {
		// never echo a connection string
		return "postgresql"
	}
	return s.dsn
}

// Seed upserts every record of ds in a single transaction.
func (s *SQLStore) Seed(ctx context.Context, ds models.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	exec := func(query string, args ...any) error {
		_, err := tx.ExecContext(ctx, s.rebind(query), args...)
		return err
	}

	for name, doc := range map[string]any{"profile": ds.Profile, "progress": ds.Progress} {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if err := exec(`INSERT INTO documents (name, data) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET data = excluded.data`, name, string(data)); err != nil {
			return fmt.Errorf("document %s: %w", name, err)
		}
	}

	for _, e := range ds.Entries {
		if err := exec(`INSERT INTO entries (date, tasks_completed, total_tasks, has_reading, has_philosophical, mood)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET tasks_completed = excluded.tasks_completed, total_tasks = excluded.total_tasks,
			has_reading = excluded.has_reading, has_philosophical = excluded.has_philosophical, mood = excluded.mood`,
			e.Date, e.TasksCompleted, e.TotalTasks, e.HasReading, e.HasPhilosophical, string(e.Mood)); err != nil {
			return fmt.Errorf("entry %s: %w", e.Date, err)
		}
	}

	for _, d := range ds.Days {
		cols, err := marshalAll(d.Completed, d.Planned, d.Articles, d.Writings)
		if err != nil {
			return err
		}
		if err := exec(`INSERT INTO days (date, mood, completed, planned, articles, writings, reflection)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET mood = excluded.mood, completed = excluded.completed, planned = excluded.planned,
			articles = excluded.articles, writings = excluded.writings, reflection = excluded.reflection`,
			d.Date, string(d.Mood), cols[0], cols[1], cols[2], cols[3], d.Reflection); err != nil {
			return fmt.Errorf("day %s: %w", d.Date, err)
		}
	}

	for _, u := range ds.Updates {
		cols, err := marshalAll(u.Reading, u.DSA)
		if err != nil {
			return err
		}
		if err := exec(`INSERT INTO updates (id, date, reading, dsa, mood) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET date = excluded.date, reading = excluded.reading, dsa = excluded.dsa, mood = excluded.mood`,
			u.ID, u.Date, cols[0], cols[1], string(u.Mood)); err != nil {
			return fmt.Errorf("update %s: %w", u.ID, err)
		}
	}

	for _, td := range ds.TaskDays {
		cols, err := marshalAll(td.Completed, td.Planned)
		if err != nil {
			return err
		}
		if err := exec(`INSERT INTO task_days (date, completed, planned, reflection) VALUES (?, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET completed = excluded.completed, planned = excluded.planned, reflection = excluded.reflection`,
			td.Date, cols[0], cols[1], td.Reflection); err != nil {
			return fmt.Errorf("task day %s: %w", td.Date, err)
		}
	}

	for _, a := range ds.Articles {
		cols, err := marshalAll(a.Tags)
		if err != nil {
			return err
		}
		if err := exec(`INSERT INTO articles (id, title, excerpt, category, read_time_min, date, tags) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET title = excluded.title, excerpt = excluded.excerpt, category = excluded.category,
			read_time_min = excluded.read_time_min, date = excluded.date, tags = excluded.tags`,
			a.ID, a.Title, a.Excerpt, a.Category, a.ReadTimeMin, a.Date, cols[0]); err != nil {
			return fmt.Errorf("article %s: %w", a.ID, err)
		}
	}

	for _, w := range ds.Writings {
		if err := exec(`INSERT INTO writings (id, title, excerpt, category, date, mood, read_time_min) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET title = excluded.title, excerpt = excluded.excerpt, category = excluded.category,
			date = excluded.date, mood = excluded.mood, read_time_min = excluded.read_time_min`,
			w.ID, w.Title, w.Excerpt, string(w.Category), w.Date, string(w.Mood), w.ReadTimeMin); err != nil {
			return fmt.Errorf("writing %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLStore) getDocument(name string, v any) error {
	var data string
	err := s.db.QueryRow(s.rebind("SELECT data FROM documents WHERE name = ?"), name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), v)
}

func (s *SQLStore) GetProfile() (models.Profile, error) {
	var p models.Profile
	err := s.getDocument("profile", &p)
	return p, err
}

func (s *SQLStore) GetProgress() (models.Progress, error) {
	var p models.Progress
	err := s.getDocument("progress", &p)
	return p, err
}

const entryColumns = "date, tasks_completed, total_tasks, has_reading, has_philosophical, mood"

func scanEntry(sc interface{ Scan(...any) error }) (models.DailyEntry, error) {
	var e models.DailyEntry
	var mood string
	err := sc.Scan(&e.Date, &e.TasksCompleted, &e.TotalTasks, &e.HasReading, &e.HasPhilosophical, &mood)
	e.Mood = models.Mood(mood)
	return e, err
}

func (s *SQLStore) GetAllEntries() ([]models.DailyEntry, error) {
	rows, err := s.db.Query("SELECT " + entryColumns + " FROM entries ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DailyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetEntry(date string) (models.DailyEntry, error) {
	row := s.db.QueryRow(s.rebind("SELECT "+entryColumns+" FROM entries WHERE date = ?"), date)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyEntry{}, fmt.Errorf("entry %s: %w", date, ErrNotFound)
	}
	return e, err
}

const dayColumns = "date, mood, completed, planned, articles, writings, reflection"

func scanDay(sc interface{ Scan(...any) error }) (models.DayDetail, error) {
	var d models.DayDetail
	var mood, completed, planned, articles, writings string
	if err := sc.Scan(&d.Date, &mood, &completed, &planned, &articles, &writings, &d.Reflection); err != nil {
		return models.DayDetail{}, err
	}
	d.Mood = models.Mood(mood)
	err := unmarshalAll(
		[]string{completed, planned, articles, writings},
		&d.Completed, &d.Planned, &d.Articles, &d.Writings,
	)
	return d, err
}

func (s *SQLStore) GetDay(date string) (models.DayDetail, error) {
	row := s.db.QueryRow(s.rebind("SELECT "+dayColumns+" FROM days WHERE date = ?"), date)
	d, err := scanDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DayDetail{}, fmt.Errorf("day %s: %w", date, ErrNotFound)
	}
	return d, err
}

func (s *SQLStore) GetAllDays() ([]models.DayDetail, error) {
	rows, err := s.db.Query("SELECT " + dayColumns + " FROM days ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var days []models.DayDetail
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (s *SQLStore) GetAllUpdates() ([]models.Update, error) {
	rows, err := s.db.Query("SELECT id, date, reading, dsa, mood FROM updates ORDER BY date DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Update
	for rows.Next() {
		var u models.Update
		var reading, dsa, mood string
		if err := rows.Scan(&u.ID, &u.Date, &reading, &dsa, &mood); err != nil {
			return nil, err
		}
		if err := unmarshalAll([]string{reading, dsa}, &u.Reading, &u.DSA); err != nil {
			return nil, fmt.Errorf("update %s: %w", u.ID, err)
		}
		u.Mood = models.UpdateMood(mood)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetAllTaskDays() ([]models.TaskDay, error) {
	rows, err := s.db.Query("SELECT date, completed, planned, reflection FROM task_days ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TaskDay
	for rows.Next() {
		var td models.TaskDay
		var completed, planned string
		if err := rows.Scan(&td.Date, &completed, &planned, &td.Reflection); err != nil {
			return nil, err
		}
		if err := unmarshalAll([]string{completed, planned}, &td.Completed, &td.Planned); err != nil {
			return nil, fmt.Errorf("task day %s: %w", td.Date, err)
		}
		out = append(out, td)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetAllArticles() ([]models.Article, error) {
	rows, err := s.db.Query("SELECT id, title, excerpt, category, read_time_min, date, tags FROM articles ORDER BY date DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Article
	for rows.Next() {
		var a models.Article
		var tags string
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.ReadTimeMin, &a.Date, &tags); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
			return nil, fmt.Errorf("article %s tags: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetAllWritings() ([]models.Writing, error) {
	rows, err := s.db.Query("SELECT id, title, excerpt, category, date, mood, read_time_min FROM writings ORDER BY date DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Writing
	for rows.Next() {
		var w models.Writing
		var category, mood string
		if err := rows.Scan(&w.ID, &w.Title, &w.Excerpt, &category, &w.Date, &mood, &w.ReadTimeMin); err != nil {
			return nil, err
		}
		w.Category = models.WritingCategory(category)
		w.Mood = models.WritingMood(mood)
		out = append(out, w)
	}
	return out, rows.Err()
}

func marshalAll(values ...any) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[i] = string(data)
	}
	return out, nil
}

func unmarshalAll(raw []string, dest ...any) error {
	for i, r := range raw {
		if err := json.Unmarshal([]byte(r), dest[i]); err != nil {
			return err
		}
	}
	return nil
}
