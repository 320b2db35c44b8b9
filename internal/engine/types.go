package engine

// Icon tags a timeline entry with one glyph from a small fixed set.
type Icon string

const (
	IconGym     Icon = "gym"
	IconCollege Icon = "college"
	IconDev     Icon = "dev"
	IconSteps   Icon = "steps"
	IconSleep   Icon = "sleep"
	IconDefault Icon = "default"
)

func (i Icon) IsValid() bool {
	switch i {
	case IconGym, IconCollege, IconDev, IconSteps, IconSleep, IconDefault:
		return true
	default:
		return false
	}
}

// Split is the training split of a workout entry.
type Split string

const (
	SplitPush     Split = "push"
	SplitPull     Split = "pull"
	SplitLegs     Split = "legs"
	SplitUpper    Split = "upper"
	SplitLower    Split = "lower"
	SplitFullBody Split = "full-body"
)

var Splits = []Split{SplitPush, SplitPull, SplitLegs, SplitUpper, SplitLower, SplitFullBody}

func (s Split) IsValid() bool {
	switch s {
	case SplitPush, SplitPull, SplitLegs, SplitUpper, SplitLower, SplitFullBody:
		return true
	default:
		return false
	}
}

// Label is the human name shown in lists, e.g. "Full Body".
func (s Split) Label() string {
	switch s {
	case SplitPush:
		return "Push"
	case SplitPull:
		return "Pull"
	case SplitLegs:
		return "Legs"
	case SplitUpper:
		return "Upper"
	case SplitLower:
		return "Lower"
	case SplitFullBody:
		return "Full Body"
	default:
		return string(s)
	}
}
