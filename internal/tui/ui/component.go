package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Numeric     bool // true for 0-9 shortcuts (displayed in a different color)
}

// Component is the lifecycle interface for all TUI pages.
//
// Start runs when the page becomes the top of the stack and Stop when it is
// covered or popped; pages that own timers start and tear them down there.
// ApplyTheme re-reads the shared palette after a theme switch.
type Component interface {
	Name() string
	Start()
	Stop()
	Hints() []MenuHint
	ApplyTheme()
}
