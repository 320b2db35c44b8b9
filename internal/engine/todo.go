package engine

import (
	"context"
	"strings"
)

func (s *Service) Todos() []*Todo { return s.todos.Records() }

// AddTodo appends a todo. Blank time or task adds nothing and is not an error.
func (s *Service) AddTodo(ctx context.Context, when, task string) (*Todo, error) {
	when, task = strings.TrimSpace(when), strings.TrimSpace(task)
	if when == "" || task == "" {
		return nil, nil
	}
	t := &Todo{Time: when, Task: task}
	if err := s.todos.Append(ctx, t); err != nil {
		return nil, err
	}
	s.log.Debug("todo added")
	return t, nil
}

// ToggleTodo flips completion of todo id. Unknown ids report false.
func (s *Service) ToggleTodo(ctx context.Context, id string) (bool, error) {
	return s.todos.Update(ctx, id, func(t *Todo) { t.Completed = !t.Completed })
}
