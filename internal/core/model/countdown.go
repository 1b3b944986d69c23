package model

import "fmt"

// Phase is the session controller state.
type Phase string

const (
	// PhaseStart is the idle state; the next action starts a session.
	PhaseStart Phase = "start"
	// PhaseBreakTime means a focus countdown runs and a break comes next.
	PhaseBreakTime Phase = "break_time"
	// PhaseFocus means a break countdown runs and focus comes next.
	PhaseFocus Phase = "focus"
)

// CountdownState is the shared timer state.
type CountdownState struct {
	RemainingSeconds int
	Running          bool
	Phase            Phase
	Acknowledged     bool
}

// IdleState returns the state of a freshly created timer.
func IdleState() CountdownState {
	return CountdownState{Phase: PhaseStart}
}

// SplitSeconds converts a number of seconds into hours, minutes and seconds.
func SplitSeconds(total int) (hours, minutes, seconds int) {
	if total < 0 {
		total = 0
	}
	return total / 3600, (total % 3600) / 60, total % 60
}

// TotalSeconds converts hours, minutes and seconds into seconds.
func TotalSeconds(hours, minutes, seconds int) int {
	return hours*3600 + minutes*60 + seconds
}

// FormatClock renders seconds as H:MM:SS.
func FormatClock(total int) string {
	hours, minutes, seconds := SplitSeconds(total)
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
