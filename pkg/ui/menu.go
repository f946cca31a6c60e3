package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// scrim is the translucent layer behind the action menu. Tapping it closes
// the menu without selecting anything.
type scrim struct {
	widget.BaseWidget
	onTapped func()
}

var _ fyne.Tappable = (*scrim)(nil)

func newScrim(onTapped func()) *scrim {
	s := &scrim{onTapped: onTapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *scrim) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.NRGBA{A: 0x99}))
}

func (s *scrim) Tapped(*fyne.PointEvent) {
	if s.onTapped != nil {
		s.onTapped()
	}
}

// ActionMenu is the floating menu overlay: a window-covering scrim with a
// small card of fullscreen actions anchored bottom-right, above where the
// "+" button sits.
type ActionMenu struct {
	widget.BaseWidget

	scrim     *scrim
	enterItem *widget.Button
	exitItem  *widget.Button
	content   *fyne.Container
}

// NewActionMenu builds the overlay. onEnter and onExit fire when the
// corresponding entry is chosen; onDismiss fires when the scrim is tapped.
// Closing the menu afterwards is the caller's business.
func NewActionMenu(onEnter, onExit, onDismiss func()) *ActionMenu {
	m := &ActionMenu{}
	m.ExtendBaseWidget(m)

	m.scrim = newScrim(onDismiss)
	m.enterItem = widget.NewButton("Enter Fullscreen", onEnter)
	m.exitItem = widget.NewButton("Exit Fullscreen", onExit)

	card := widget.NewCard("", "", container.NewVBox(m.enterItem, m.exitItem))
	anchored := container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), card),
	))
	m.content = container.NewStack(m.scrim, anchored)
	return m
}

func (m *ActionMenu) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.content)
}
