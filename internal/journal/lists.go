package journal

import (
	"fmt"

	"github.com/julianstephens/journey/internal/models"
)

func (s *Service) Updates() ([]models.Update, error) {
	updates, err := s.store.GetAllUpdates()
	if err != nil {
		return nil, fmt.Errorf("failed to load updates: %w", err)
	}
	return updates, nil
}

func (s *Service) TaskDays() ([]models.TaskDay, error) {
	days, err := s.store.GetAllTaskDays()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return days, nil
}

func (s *Service) Articles() ([]models.Article, error) {
	articles, err := s.store.GetAllArticles()
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	return articles, nil
}

func (s *Service) Writings() ([]models.Writing, error) {
	writings, err := s.store.GetAllWritings()
	if err != nil {
		return nil, fmt.Errorf("failed to load writings: %w", err)
	}
	return writings, nil
}

func (s *Service) Entries() ([]models.DailyEntry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}
