package ports

// Pauser controls the tick scheduler. The save lifecycle uses it to stop
// time when the save is deleted and to honor the user-facing pause state.
type Pauser interface {
	Pause()
	Resume()
	Paused() bool
}
