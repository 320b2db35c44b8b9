package engine

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// WorkoutInput is the raw form: every field is required.
type WorkoutInput struct {
	Date     string
	Day      string
	Split    string
	Exercise string
	Sets     string
	Reps     string
	Weight   string
}

func (in WorkoutInput) blank() bool {
	for _, v := range []string{in.Date, in.Day, in.Split, in.Exercise, in.Sets, in.Reps, in.Weight} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func (s *Service) Workouts() []*Workout { return s.workouts.Records() }

// AddWorkout appends a workout entry. Any blank field adds nothing; a field
// that cannot be parsed is a ValidationError.
func (s *Service) AddWorkout(ctx context.Context, in WorkoutInput) (*Workout, error) {
	if in.blank() {
		return nil, nil
	}
	w, err := parseWorkout(in)
	if err != nil {
		return nil, err
	}
	if err := s.workouts.Append(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func parseWorkout(in WorkoutInput) (*Workout, error) {
	split, ok := ParseSplit(in.Split)
	if !ok {
		return nil, ValidationError{Field: "split", Value: in.Split, Reason: "want push, pull, legs, upper, lower or full-body"}
	}
	sets, err := parseCount("sets", in.Sets)
	if err != nil {
		return nil, err
	}
	reps, err := parseCount("reps", in.Reps)
	if err != nil {
		return nil, err
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(in.Weight), 64)
	if err != nil || weight < 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return nil, ValidationError{Field: "weight", Value: in.Weight, Reason: "want a non-negative number of kg"}
	}
	return &Workout{
		Date:     strings.TrimSpace(in.Date),
		Day:      strings.TrimSpace(in.Day),
		Split:    split,
		Exercise: strings.TrimSpace(in.Exercise),
		Sets:     sets,
		Reps:     reps,
		Weight:   weight,
	}, nil
}

func parseCount(field, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, ValidationError{Field: field, Value: v, Reason: "want a positive whole number"}
	}
	return n, nil
}
