package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/julianstephens/journey/internal/config"
	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/models"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

type page struct {
	Site  config.Site
	Title string
}

type indexPage struct {
	page
	Overview  journal.Overview
	Month     journal.Month
	Weekdays  []string
	PrevMonth string
	NextMonth string
	Summary   journal.Summary
	Updates   []models.Update
}

type dayPage struct {
	page
	Day *journal.Day
}

type errorPage struct {
	page
	Status  int
	Heading string
	Message string
}

type tasksPage struct {
	page
	Days []models.TaskDay
}

type articlesPage struct {
	page
	Articles []models.Article
}

type writingsPage struct {
	page
	Writings []models.Writing
}

func (s *Server) newPage(title string) page {
	return page{Site: s.site.Get(), Title: title}
}

func monthParam(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(constants.MonthFormat)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	selected := s.journal.Today()
	if v := q.Get("date"); v != "" {
		t, err := journal.ParseDate(v)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, "Invalid date", v)
			return
		}
		selected = t
	}

	year, month := selected.Year(), selected.Month()
	if v := q.Get("month"); v != "" {
		y, m, err := journal.ParseMonth(v)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, "Invalid month", v)
			return
		}
		year, month = y, m
	}

	cal, err := s.journal.Month(year, month, selected)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	summary, err := s.journal.Summary(selected)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	overview, err := s.journal.Overview()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	updates, err := s.journal.Updates()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	data := indexPage{
		page:     s.newPage(""),
		Overview: overview,
		Month:    cal,
		Weekdays: weekdays,
		Summary:  summary,
		Updates:  updates,
	}
	data.PrevMonth = monthParam(cal.Prev())
	data.NextMonth = monthParam(cal.Next())
	s.render(w, r, http.StatusOK, "index", data)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	value := mux.Vars(r)["date"]
	day, err := s.journal.Day(value)
	switch {
	case errors.Is(err, journal.ErrInvalidDate):
		s.renderError(w, r, http.StatusBadRequest, "Invalid date", value)
	case errors.Is(err, journal.ErrNoEntry):
		s.renderError(w, r, http.StatusNotFound, journal.FormatISO(value, constants.LongDateFormat), constants.NoEntryMessage)
	case err != nil:
		s.serverError(w, r, err)
	default:
		s.render(w, r, http.StatusOK, "day", dayPage{page: s.newPage(day.Title()), Day: day})
	}
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	days, err := s.journal.TaskDays()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "tasks", tasksPage{page: s.newPage("Daily Tasks & Planning"), Days: days})
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.journal.Articles()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "articles", articlesPage{page: s.newPage("Learning Articles"), Articles: articles})
}

func (s *Server) handleWritings(w http.ResponseWriter, r *http.Request) {
	writings, err := s.journal.Writings()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "writings", writingsPage{page: s.newPage("Thoughts & Reflections"), Writings: writings})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, "Page not found", r.URL.Path)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleAPIEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.journal.Entries()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal error"})
		logger.Error("api entries failed", "err", err, "request_id", RequestID(r.Context()))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAPIDay(w http.ResponseWriter, r *http.Request) {
	day, err := s.journal.Day(mux.Vars(r)["date"])
	switch {
	case errors.Is(err, journal.ErrInvalidDate):
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid date"})
	case errors.Is(err, journal.ErrNoEntry):
		writeJSON(w, http.StatusNotFound, apiError{Error: constants.NoEntryMessage})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal error"})
		logger.Error("api day failed", "err", err, "request_id", RequestID(r.Context()))
	default:
		writeJSON(w, http.StatusOK, day.DayDetail)
	}
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response", "err", err)
	}
}

// render executes a page into a buffer first so template errors become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("template failed", "template", name, "err", err, "request_id", RequestID(r.Context()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, heading, message string) {
	s.render(w, r, status, "error", errorPage{
		page:    s.newPage(heading),
		Status:  status,
		Heading: heading,
		Message: message,
	})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	s.renderError(w, r, http.StatusInternalServerError, "Something went wrong", "Please try again later.")
}
