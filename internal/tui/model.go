package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dashline/internal/engine"
	"dashline/internal/export"
	"dashline/internal/ui"
)

// boardService is the part of engine.Service the board drives.
type boardService interface {
	Timeline() []*engine.TimelineEntry
	Todos() []*engine.Todo
	Workouts() []*engine.Workout
	Notices() []engine.Notice
	AddTodo(ctx context.Context, when, task string) (*engine.Todo, error)
	ToggleTodo(ctx context.Context, id string) (bool, error)
	ExportTodos(ctx context.Context) (export.Result, error)
	ExportWorkouts(ctx context.Context) (export.Result, error)
}

// recentWorkouts caps the workout panel.
const recentWorkouts = 6

type addStep int

const (
	addNone addStep = iota
	addTime
	addTask
)

type boardModel struct {
	ctx context.Context
	svc boardService
	now func() time.Time

	width  int
	height int

	timeline []*engine.TimelineEntry
	todos    []*engine.Todo
	workouts []*engine.Workout

	selected int

	step    addStep
	input   textinput.Model
	newTime string

	lastLog string
	loading bool
}

type loadedMsg struct {
	timeline []*engine.TimelineEntry
	todos    []*engine.Todo
	workouts []*engine.Workout
}

type toggledMsg struct {
	id    string
	found bool
	err   error
}

type addedMsg struct {
	todo *engine.Todo
	err  error
}

type exportedMsg struct {
	what string
	res  export.Result
	err  error
}

func newBoardModel(ctx context.Context, svc boardService) boardModel {
	in := textinput.New()
	in.CharLimit = 120
	in.Width = 40

	lastLog := "Loaded."
	if ns := svc.Notices(); len(ns) > 0 {
		lastLog = ns[len(ns)-1].Message
	}
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		now:     time.Now,
		input:   in,
		loading: true,
		lastLog: lastLog,
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			timeline: m.svc.Timeline(),
			todos:    m.svc.Todos(),
			workouts: m.svc.Workouts(),
		}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.svc.ToggleTodo(m.ctx, id)
		return toggledMsg{id: id, found: found, err: err}
	}
}

func (m boardModel) addCmd(when, task string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.svc.AddTodo(m.ctx, when, task)
		return addedMsg{todo: t, err: err}
	}
}

func (m boardModel) exportCmd(what string) tea.Cmd {
	return func() tea.Msg {
		var (
			res export.Result
			err error
		)
		if what == "workouts" {
			res, err = m.svc.ExportWorkouts(m.ctx)
		} else {
			res, err = m.svc.ExportTodos(m.ctx)
		}
		return exportedMsg{what: what, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.timeline = msg.timeline
		m.todos = msg.todos
		m.workouts = msg.workouts
		m.clampSelection()
		return m, nil
	case toggledMsg:
		switch {
		case msg.err != nil:
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		case !msg.found:
			m.lastLog = "Todo not found."
		default:
			m.lastLog = "Toggled."
		}
		return m, m.loadCmd()
	case addedMsg:
		switch {
		case msg.err != nil:
			m.lastLog = "Add failed: " + msg.err.Error()
			return m, nil
		case msg.todo == nil:
			m.lastLog = "Nothing added: time and task are both required."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Added %q.", msg.todo.Task)
		return m, m.loadCmd()
	case exportedMsg:
		if msg.err != nil {
			m.lastLog = "Export failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Exported %d %s (%d page(s)) to %s", msg.res.Records, msg.what, msg.res.Pages, msg.res.Path)
		return m, nil
	case tea.KeyMsg:
		if m.step != addNone {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = fmt.Sprintf("Refreshed at %s.", m.now().Format("15:04:05"))
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.todos)-1 {
				m.selected++
			}
			return m, nil
		case " ", "x":
			if m.selected < 0 || m.selected >= len(m.todos) {
				m.lastLog = "No todo selected."
				return m, nil
			}
			return m, m.toggleCmd(m.todos[m.selected].ID)
		case "a":
			m.step = addTime
			m.input.Placeholder = "time, e.g. 2:00 PM"
			m.input.SetValue("")
			return m, m.input.Focus()
		case "e":
			m.lastLog = "Exporting todos…"
			return m, m.exportCmd("todos")
		case "w":
			m.lastLog = "Exporting workouts…"
			return m, m.exportCmd("workouts")
		}
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.step = addNone
		m.input.Blur()
		m.lastLog = "Add cancelled."
		return m, nil
	case tea.KeyEnter:
		v := m.input.Value()
		if m.step == addTime {
			m.newTime = v
			m.step = addTask
			m.input.Placeholder = "task"
			m.input.SetValue("")
			return m, nil
		}
		m.step = addNone
		m.input.Blur()
		return m, m.addCmd(m.newTime, v)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.todos) {
		m.selected = len(m.todos) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	header := ui.Heading(ui.IconClock, "Dashline | "+m.now().Format("Monday, Jan 2"))
	if m.loading {
		return header + "\n\nLoading…\n"
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Render(m.renderTimeline()),
		" ",
		ui.Panel.Render(m.renderTodos()),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, top, ui.Panel.Render(m.renderWorkouts()))

	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderTimeline() string {
	out := []string{ui.PanelTitle.Render("Daily Timeline")}
	if len(m.timeline) == 0 {
		out = append(out, ui.Muted.Render("(empty)"))
	}
	for _, e := range m.timeline {
		out = append(out, fmt.Sprintf("%s %s  %s", ui.TimelineIcon(string(e.Icon)), ui.Muted.Render(e.Time), e.Task))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderTodos() string {
	out := []string{ui.PanelTitle.Render("Todos")}
	if len(m.todos) == 0 {
		out = append(out, ui.Muted.Render("(none, press a to add)"))
	}
	for i, t := range m.todos {
		cursor := "  "
		if i == m.selected {
			cursor = ui.SelectedRow.Render(">") + " "
		}
		line := fmt.Sprintf("%s %s  %s", ui.Checkbox(t.Completed), ui.Muted.Render(t.Time), ui.TodoText(t.Task, t.Completed))
		out = append(out, cursor+line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderWorkouts() string {
	out := []string{ui.PanelTitle.Render("Workout Log")}
	ws := m.workouts
	if len(ws) > recentWorkouts {
		ws = ws[len(ws)-recentWorkouts:]
	}
	if len(ws) == 0 {
		out = append(out, ui.Muted.Render("(no workouts logged)"))
	}
	for _, w := range ws {
		out = append(out, fmt.Sprintf("%s %s (%s) %s  %s %dx%d @ %skg",
			ui.IconLift, w.Date, w.Day, ui.H2.Render(w.Split.Label()),
			w.Exercise, w.Sets, w.Reps, engine.FormatWeight(w.Weight)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	if m.step != addNone {
		label := "New todo time"
		if m.step == addTask {
			label = "New todo task"
		}
		return ui.Key.Render(label+":") + " " + m.input.View() + "\n" + ui.Dim.Render("enter: next  esc: cancel")
	}
	keys := ui.Dim.Render("j/k: move  space: toggle  a: add  e: export todos  w: export workouts  r: refresh  q: quit")
	return m.lastLog + "\n" + keys
}
