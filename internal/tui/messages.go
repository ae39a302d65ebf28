package tui

import "folioshell/internal/terminal"

// taskDoneMsg carries the result of an async command back to Update.
type taskDoneMsg terminal.Result

// typeTickMsg advances the typing animation of generation gen.
type typeTickMsg struct {
	gen uint64
}

// dataLoadedMsg reports the initial portfolio fetch.
type dataLoadedMsg struct {
	ok bool
}
