package tui

import "errors"

var errNoPictureReference = errors.New("no picture stored")

// Results of the editor commands. The error itself is already on the
// editor's error message; err only tells the model the call failed.
type loadedMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type uploadedMsg struct {
	err error
}

type copiedMsg struct {
	reference string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
