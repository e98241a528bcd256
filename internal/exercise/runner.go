// Package exercise runs the record scenarios one after another and writes
// every step to a journal.
//
// A scenario reads like the script it reproduces: build a record, call a few
// methods, report what happened. When a constructor fails the scenario stops
// there, the way a script stops on an exception, and the runner moves on to
// the next scenario.
package exercise

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/oops-exercises/internal/storage"
	"github.com/aanand-mishra/oops-exercises/internal/types"
	"github.com/aanand-mishra/oops-exercises/internal/utils/report"
	"github.com/google/uuid"
)

// Exercise is one named scenario.
type Exercise struct {
	Name string
	Run  func(s *Session) error
}

// Runner executes exercises and journals their steps under a single run ID.
type Runner struct {
	log     *slog.Logger
	journal storage.Journal
	runID   string
}

// NewRunner returns a Runner that logs through log and records every step in
// journal under a freshly generated run ID.
func NewRunner(log *slog.Logger, journal storage.Journal) *Runner {
	return &Runner{
		log:     log.With(slog.String("component", "exercise")),
		journal: journal,
		runID:   uuid.NewString(),
	}
}

// RunID identifies this runner's entries in the journal.
func (r *Runner) RunID() string { return r.runID }

// Run executes exercises in order. A failed construction only ends the
// exercise it happened in; Run returns an error only when the journal
// cannot record a step.
func (r *Runner) Run(exercises []Exercise) error {
	for _, ex := range exercises {
		s := &Session{runner: r, exercise: ex.Name}

		r.log.Debug("exercise started", slog.String("exercise", ex.Name))
		err := ex.Run(s)

		if s.journalErr != nil {
			return fmt.Errorf("exercise.Run: %s: %w", ex.Name, s.journalErr)
		}
		if err != nil {
			r.log.Warn("exercise aborted",
				slog.String("exercise", ex.Name),
				slog.String("error", err.Error()))
			continue
		}
		r.log.Debug("exercise finished", slog.String("exercise", ex.Name))
	}
	return nil
}

// Session is handed to an exercise while it runs.
type Session struct {
	runner     *Runner
	exercise   string
	journalErr error
}

// Construct records the result of building a record. It returns err
// unchanged, so an exercise can write:
//
//	acc, err := record.NewBankAccount("Joshi", 500)
//	if err := s.Construct("open Joshi 500", err, ""); err != nil {
//	    return err
//	}
func (s *Session) Construct(action string, err error, detail string) error {
	s.record(action, err, detail)
	return err
}

// Do records the result of an operation on an existing record. Refusals are
// expected outcomes, so Do never stops the exercise.
func (s *Session) Do(action string, err error, detail string) {
	s.record(action, err, detail)
}

// Note records a successful read-only step such as a query.
func (s *Session) Note(action, detail string) {
	s.record(action, nil, detail)
}

func (s *Session) record(action string, err error, detail string) {
	status, reason := report.Outcome(err)
	if err != nil {
		detail = reason
	}

	level := slog.LevelInfo
	if status != types.StatusOK {
		level = slog.LevelWarn
	}
	s.runner.log.Log(context.Background(), level, "step",
		slog.String("exercise", s.exercise),
		slog.String("action", action),
		slog.String("status", status),
		slog.String("detail", detail))

	if s.journalErr != nil {
		return
	}
	_, jerr := s.runner.journal.Append(types.Entry{
		RunID:    s.runner.runID,
		Exercise: s.exercise,
		Action:   action,
		Status:   status,
		Detail:   detail,
	})
	s.journalErr = jerr
}
