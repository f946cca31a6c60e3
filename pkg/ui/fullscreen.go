package ui

import "fyne.io/fyne/v2"

// FullscreenControl is the host-environment port for fullscreen display.
// Requests are fire-and-forget: the host reports nothing back, and no view
// state changes on either call.
type FullscreenControl interface {
	Enter()
	Exit()
}

// WindowFullscreen drives fullscreen on a fyne window.
type WindowFullscreen struct {
	win fyne.Window
}

func NewWindowFullscreen(w fyne.Window) *WindowFullscreen {
	return &WindowFullscreen{win: w}
}

func (c *WindowFullscreen) Enter() {
	c.win.SetFullScreen(true)
}

func (c *WindowFullscreen) Exit() {
	c.win.SetFullScreen(false)
}
