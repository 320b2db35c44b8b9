package engine

import (
	"context"
	"strings"
)

// TimelinePatch carries the fields to change; nil leaves a field as is.
type TimelinePatch struct {
	Time *string
	Task *string
	Icon *Icon
}

func (s *Service) Timeline() []*TimelineEntry { return s.timeline.Records() }

// BeginTimelineEdit holds back writes until EndTimelineEdit.
func (s *Service) BeginTimelineEdit() { s.timeline.BeginEdit() }

func (s *Service) EndTimelineEdit(ctx context.Context) error {
	return s.timeline.EndEdit(ctx)
}

func (s *Service) TimelineEditing() bool { return s.timeline.Editing() }

// EditTimelineEntry applies patch to entry id. Unknown ids report false.
func (s *Service) EditTimelineEntry(ctx context.Context, id string, patch TimelinePatch) (bool, error) {
	return s.timeline.Update(ctx, id, func(e *TimelineEntry) {
		if patch.Time != nil {
			e.Time = *patch.Time
		}
		if patch.Task != nil {
			e.Task = *patch.Task
		}
		if patch.Icon != nil {
			e.Icon = *patch.Icon
			if !e.Icon.IsValid() {
				e.Icon = IconDefault
			}
		}
	})
}

// AddTimelineEntry appends an entry. Blank time or task adds nothing.
func (s *Service) AddTimelineEntry(ctx context.Context, when, task string, icon Icon) (*TimelineEntry, error) {
	when, task = strings.TrimSpace(when), strings.TrimSpace(task)
	if when == "" || task == "" {
		return nil, nil
	}
	if !icon.IsValid() {
		icon = IconDefault
	}
	e := &TimelineEntry{Time: when, Task: task, Icon: icon}
	if err := s.timeline.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
