package api

// TaskHandle cancels a posted task. Cancel after the task has run is a
// no-op.
type TaskHandle interface {
	Cancel()
}

// Scheduler posts deferred work onto the host event thread. The switcher
// uses it for the delayed shift-state update that follows cursor movement;
// that task must be cancellable so a stale auto-capitalization cannot
// override a manual shift action.
type Scheduler interface {
	Post(fn func()) TaskHandle
}
