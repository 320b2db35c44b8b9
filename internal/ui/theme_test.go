package ui

import (
	"strings"
	"testing"
)

func TestTimelineIcon(t *testing.T) {
	cases := map[string]string{
		"gym":     IconGym,
		"college": IconCollege,
		"dev":     IconDev,
		"steps":   IconSteps,
		"sleep":   IconSleep,
		"default": IconClock,
		"rocket":  IconClock,
		"":        IconClock,
	}
	for tag, want := range cases {
		if got := TimelineIcon(tag); got != want {
			t.Fatalf("TimelineIcon(%q)=%q, want %q", tag, got, want)
		}
	}
}

func TestCheckboxAndTodoText(t *testing.T) {
	if !strings.Contains(Checkbox(true), "[x]") || !strings.Contains(Checkbox(false), "[ ]") {
		t.Fatalf("checkbox mismatch")
	}
	if TodoText("call", false) != "call" {
		t.Fatalf("open todo should render plain")
	}
	if !strings.Contains(TodoText("call", true), "call") {
		t.Fatalf("done todo lost its text")
	}
}

func TestNoticeText(t *testing.T) {
	if !strings.Contains(NoticeText("warn", "kept"), IconWarn) {
		t.Fatalf("warn notice missing icon")
	}
	if !strings.Contains(NoticeText("info", "archived"), "archived") {
		t.Fatalf("info notice missing message")
	}
}
