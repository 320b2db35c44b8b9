package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashline theme (CLI + TUI).

const (
	IconClock   = "⏰"
	IconGym     = "🏋️"
	IconCollege = "🎓"
	IconDev     = "💻"
	IconSteps   = "👣"
	IconSleep   = "🌙"
	IconTodo    = "📝"
	IconLift    = "💪"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconExport  = "📄"
	IconArchive = "📦"
	IconImage   = "🖼️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)
	Done  = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TimelineIcon maps a stored icon tag to its glyph. Unknown tags get the clock.
func TimelineIcon(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "gym":
		return IconGym
	case "college":
		return IconCollege
	case "dev":
		return IconDev
	case "steps":
		return IconSteps
	case "sleep":
		return IconSleep
	default:
		return IconClock
	}
}

func Checkbox(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// TodoText renders a todo task, struck through once completed.
func TodoText(task string, completed bool) string {
	if completed {
		return Done.Render(task)
	}
	return task
}

func NoticeText(level string, msg string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warn":
		return Warn.Render(IconWarn + " " + msg)
	case "error":
		return Bad.Render(IconError + " " + msg)
	default:
		return Muted.Render(IconInfo + " " + msg)
	}
}
