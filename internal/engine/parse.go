package engine

import "strings"

// ParseIcon parses user input to an Icon.
// Unknown or empty input falls back to IconDefault.
func ParseIcon(input string) Icon {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "gym", "workout":
		return IconGym
	case "college", "school", "class":
		return IconCollege
	case "dev", "code", "study":
		return IconDev
	case "steps", "walk":
		return IconSteps
	case "sleep", "bed":
		return IconSleep
	default:
		return IconDefault
	}
}

// ParseSplit parses user input to a Split. ok is false for unknown input.
func ParseSplit(input string) (Split, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, "_", "-")
	switch s {
	case "fullbody", "full body", "full":
		s = string(SplitFullBody)
	}
	sp := Split(s)
	return sp, sp.IsValid()
}
