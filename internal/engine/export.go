package engine

import (
	"context"
	"fmt"
	"strconv"

	"dashline/internal/export"
)

var TodoReport = export.Feature{
	Title:      "Todo List Report",
	FilePrefix: "todo-list",
	Layout:     export.DefaultLayout,
}

var WorkoutReport = export.Feature{
	Title:      "Workout Log Report",
	FilePrefix: "workout-log",
	Layout:     workoutLayout(),
}

func workoutLayout() export.Layout {
	l := export.DefaultLayout
	l.LineHeight = 8
	l.RecordGap = 7
	return l
}

func TodoLines(t *Todo) []string {
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	return []string{fmt.Sprintf("%s %s - %s", status, t.Time, t.Task)}
}

func WorkoutLines(w *Workout) []string {
	return []string{
		fmt.Sprintf("%s (%s) - %s", w.Date, w.Day, w.Split),
		fmt.Sprintf("%s: %d sets x %d reps @ %skg", w.Exercise, w.Sets, w.Reps, FormatWeight(w.Weight)),
	}
}

// FormatWeight prints weight without trailing zeros, e.g. 62.5 or 80.
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// ExportTodos writes the current todo list to a PDF report.
func (s *Service) ExportTodos(ctx context.Context) (export.Result, error) {
	res, err := export.Export(ctx, s.exporter, TodoReport, s.todos.Records(), TodoLines)
	if err != nil {
		return export.Result{}, fmt.Errorf("export todos: %w", err)
	}
	return res, nil
}

// ExportWorkouts writes the current workout log to a PDF report.
func (s *Service) ExportWorkouts(ctx context.Context) (export.Result, error) {
	res, err := export.Export(ctx, s.exporter, WorkoutReport, s.workouts.Records(), WorkoutLines)
	if err != nil {
		return export.Result{}, fmt.Errorf("export workouts: %w", err)
	}
	return res, nil
}

func (s *Service) exportTodos(ctx context.Context, todos []*Todo) (string, error) {
	res, err := export.Export(ctx, s.exporter, TodoReport, todos, TodoLines)
	return res.Path, err
}

func (s *Service) exportWorkouts(ctx context.Context, ws []*Workout) (string, error) {
	res, err := export.Export(ctx, s.exporter, WorkoutReport, ws, WorkoutLines)
	return res.Path, err
}
