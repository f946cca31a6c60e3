// Package ui is the rendering surface over pkg/viewstate: it composes the
// widgets, forwards their events into state mutations, runs the asynchronous
// load attempts, and issues fullscreen requests to the host window.
package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"lumiere/pkg/images"
	"lumiere/pkg/resource"
	"lumiere/pkg/viewstate"
)

const statusHint = "Enter an image URL and press Enter"

// Surface is the single screen of the viewer. It subscribes to the view
// state once at construction and re-renders synchronously from every
// snapshot; all of its event handlers run on the UI event thread, so state
// mutations and renders never interleave.
type Surface struct {
	state      *viewstate.State
	loader     *ImageLoader
	fullscreen FullscreenControl

	entry      *widget.Entry
	loadButton *widget.Button
	viewer     *Viewer
	status     *widget.Label
	fab        *widget.Button
	menu       *ActionMenu
	content    fyne.CanvasObject

	unsubscribe func()

	// Presentation record: what the last completed load attempt produced.
	// The three-field view state cannot carry pixels, so they live here and
	// the snapshot render picks them up after the outcome lands in SetError.
	current   image.Image
	info      images.Info
	haveImage bool

	// wantFull mirrors the last fullscreen request we issued, for the F11
	// toggle only. The host never reports actual fullscreen state back.
	wantFull bool
}

// New builds the surface over its collaborators. dispatch marshals loader
// outcomes onto the UI event thread (pass fyne.Do in the application).
func New(state *viewstate.State, fetcher resource.Fetcher, fullscreen FullscreenControl, dispatch func(func())) *Surface {
	s := &Surface{state: state, fullscreen: fullscreen}
	s.loader = NewImageLoader(fetcher, dispatch, s.onLoadResult)

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder("https://example.com/image.png")
	s.entry.OnSubmitted = func(url string) {
		state.SetImageURL(url)
	}
	s.loadButton = widget.NewButton("Load", func() {
		state.SetImageURL(s.entry.Text)
	})

	s.viewer = NewViewer()
	s.viewer.OnDoubleTapped = func() {
		log.Debug("fullscreen enter requested (double-click)")
		s.enterFullscreen()
	}

	s.status = widget.NewLabel(statusHint)
	s.status.Truncation = fyne.TextTruncateEllipsis

	s.fab = widget.NewButton("+", func() {
		state.ToggleMenu()
	})
	s.menu = NewActionMenu(
		func() {
			log.Debug("fullscreen enter requested (menu)")
			s.enterFullscreen()
			state.CloseMenu()
		},
		func() {
			log.Debug("fullscreen exit requested (menu)")
			s.exitFullscreen()
			state.CloseMenu()
		},
		state.CloseMenu,
	)
	s.menu.Hide()

	fabCorner := container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), s.fab),
	))
	center := container.NewStack(s.viewer, fabCorner, s.menu)
	topBar := container.NewBorder(nil, nil, nil, s.loadButton, s.entry)
	s.content = container.NewBorder(topBar, s.status, nil, nil, center)

	s.unsubscribe = state.Subscribe(s.onChange)
	return s
}

// Content returns the window content.
func (s *Surface) Content() fyne.CanvasObject { return s.content }

// Submit enters url into the URL bar and loads it, as if the user had typed
// it and pressed Enter.
func (s *Surface) Submit(url string) {
	s.entry.SetText(url)
	s.state.SetImageURL(url)
}

// AttachKeyboard installs the window-level key handling: Escape exits
// fullscreen, F11 toggles it. These are conveniences over the same host
// control the menu uses; they never touch the view state.
func (s *Surface) AttachKeyboard(c fyne.Canvas) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			s.exitFullscreen()
		case fyne.KeyF11:
			if s.wantFull {
				s.exitFullscreen()
			} else {
				s.enterFullscreen()
			}
		}
	})
}

// FocusEntry gives the URL bar keyboard focus.
func (s *Surface) FocusEntry(c fyne.Canvas) {
	c.Focus(s.entry)
}

// Close detaches the surface from the view state and drops any in-flight
// load.
func (s *Surface) Close() {
	s.unsubscribe()
	s.loader.Cancel()
}

func (s *Surface) enterFullscreen() {
	s.wantFull = true
	s.fullscreen.Enter()
}

func (s *Surface) exitFullscreen() {
	s.wantFull = false
	s.fullscreen.Exit()
}

// onChange is the single subscription callback: one synchronous re-render
// per mutation.
func (s *Surface) onChange(ch viewstate.Change, snap viewstate.Snapshot) {
	switch ch {
	case viewstate.ImageURLChanged:
		if snap.ImageURL == "" {
			s.loader.Cancel()
			s.haveImage = false
			s.current = nil
			s.viewer.Clear()
			s.status.SetText(statusHint)
			return
		}
		// Every submission re-enters Loading, identical URLs included.
		log.WithField("url", snap.ImageURL).Info("load started")
		s.status.SetText("Loading " + snap.ImageURL + "…")
		s.loader.Load(snap.ImageURL)

	case viewstate.ErrorChanged:
		if snap.HasError {
			s.viewer.ShowError()
			s.status.SetText("Failed to load " + snap.ImageURL)
		} else if s.haveImage {
			s.viewer.SetImage(s.current)
			s.status.SetText(snap.ImageURL + " — " + s.info.Describe())
		}

	case viewstate.MenuChanged:
		if snap.MenuOpen {
			s.menu.Show()
		} else {
			s.menu.Hide()
		}
	}
}

// onLoadResult receives a load outcome on the UI thread, records the pixels,
// and forwards the boolean outcome into the view state. The ErrorChanged
// notification that follows renders the final frame.
func (s *Surface) onLoadResult(res LoadResult) {
	if res.Err != nil {
		log.WithField("url", res.URL).WithError(res.Err).Warn("load failed")
		s.haveImage = false
		s.current = nil
		s.state.SetError(true)
		return
	}
	log.WithFields(log.Fields{"url": res.URL, "image": res.Info.Describe()}).Info("load succeeded")
	s.current = res.Image
	s.info = res.Info
	s.haveImage = true
	s.state.SetError(false)
}
