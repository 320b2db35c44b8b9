package engine

import "dashline/internal/record"

// Storage keys.
const (
	KeyTimeline = "dailyTimeline"
	KeyTodos    = "todos"
	KeyWorkouts = "workouts"
)

type TimelineEntry struct {
	record.Meta
	Time string `json:"time"`
	Task string `json:"task"`
	Icon Icon   `json:"icon"`
}

func (e *TimelineEntry) Clone() *TimelineEntry { c := *e; return &c }

type Todo struct {
	record.Meta
	Time      string `json:"time"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func (t *Todo) Clone() *Todo { c := *t; return &c }

type Workout struct {
	record.Meta
	Date     string  `json:"date"`
	Day      string  `json:"day"`
	Split    Split   `json:"split"`
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

func (w *Workout) Clone() *Workout { c := *w; return &c }

// DefaultTimeline seeds a timeline that has never been saved.
func DefaultTimeline() []*TimelineEntry {
	return []*TimelineEntry{
		{Meta: record.Meta{ID: "1"}, Time: "5:00 AM", Task: "Gym Session", Icon: IconGym},
		{Meta: record.Meta{ID: "2"}, Time: "9:00 AM - 4:30 PM", Task: "College", Icon: IconCollege},
		{Meta: record.Meta{ID: "3"}, Time: "6:00 PM - 8:00 PM", Task: "Web Development Study", Icon: IconDev},
		{Meta: record.Meta{ID: "4"}, Time: "8:00 PM - 9:00 PM", Task: "Evening Walk/Steps", Icon: IconSteps},
		{Meta: record.Meta{ID: "5"}, Time: "9:00 PM - 9:30 PM", Task: "Sleep Preparation", Icon: IconSleep},
	}
}
