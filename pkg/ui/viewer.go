package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"lumiere/pkg/images"
)

// Viewer is the central display pane: a checkerboard backdrop, the loaded
// image, and the broken-image placeholder stacked on top of each other.
// Exactly one of image and placeholder is visible at a time; the backdrop
// always shows through transparent regions. Double-tapping anywhere on the
// pane fires OnDoubleTapped.
type Viewer struct {
	widget.BaseWidget

	// OnDoubleTapped runs on a double-click anywhere on the pane.
	OnDoubleTapped func()

	backdrop    *canvas.Image
	img         *canvas.Image
	placeholder *fyne.Container
	content     *fyne.Container

	backdropSize fyne.Size
}

var _ fyne.DoubleTappable = (*Viewer)(nil)

func NewViewer() *Viewer {
	v := &Viewer{}
	v.ExtendBaseWidget(v)

	v.backdrop = canvas.NewImageFromImage(images.Checkerboard(64, 64))
	v.backdrop.FillMode = canvas.ImageFillStretch

	v.img = canvas.NewImageFromImage(nil)
	v.img.FillMode = canvas.ImageFillContain
	v.img.Hide()

	broken := canvas.NewImageFromImage(images.BrokenPlaceholder(192, 144))
	broken.FillMode = canvas.ImageFillOriginal
	broken.SetMinSize(fyne.NewSize(192, 144))
	v.placeholder = container.NewCenter(container.NewVBox(
		broken,
		widget.NewLabel("Could not load image"),
	))
	v.placeholder.Hide()

	v.content = container.NewStack(v.backdrop, v.img, v.placeholder)
	return v
}

func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// Resize keeps the checkerboard drawn at the pane's own pixel size so the
// squares never stretch.
func (v *Viewer) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	if size == v.backdropSize || size.Width < 1 || size.Height < 1 {
		return
	}
	v.backdropSize = size
	v.backdrop.Image = images.Checkerboard(int(size.Width), int(size.Height))
	v.backdrop.Refresh()
}

func (v *Viewer) DoubleTapped(*fyne.PointEvent) {
	if v.OnDoubleTapped != nil {
		v.OnDoubleTapped()
	}
}

// SetImage shows a successfully decoded image.
func (v *Viewer) SetImage(img image.Image) {
	v.img.Image = img
	v.placeholder.Hide()
	v.img.Show()
	v.img.Refresh()
}

// ShowError swaps the image out for the broken-image placeholder.
func (v *Viewer) ShowError() {
	v.img.Hide()
	v.placeholder.Show()
	v.content.Refresh()
}

// Clear returns the pane to its empty state: backdrop only.
func (v *Viewer) Clear() {
	v.img.Image = nil
	v.img.Hide()
	v.placeholder.Hide()
	v.content.Refresh()
}

// ImageVisible reports whether the image layer is currently shown.
func (v *Viewer) ImageVisible() bool { return v.img.Visible() }

// PlaceholderVisible reports whether the broken-image layer is shown.
func (v *Viewer) PlaceholderVisible() bool { return v.placeholder.Visible() }
