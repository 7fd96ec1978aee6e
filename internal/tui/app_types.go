package tui

// flashTickMsg advances the status message blink. Ticks from an older
// message carry a stale seq and are dropped.
type flashTickMsg struct{ seq int }

// recentDoneMsg reports the outcome of a best-effort recent index update.
type recentDoneMsg struct{ err error }
