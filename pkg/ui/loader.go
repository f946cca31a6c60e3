package ui

import (
	"image"
	"sync"

	"lumiere/pkg/images"
	"lumiere/pkg/resource"
)

// LoadResult is the outcome of one load attempt. Either Image and Info are
// set, or Err is.
type LoadResult struct {
	URL   string
	Image image.Image
	Info  images.Info
	Err   error
}

// ImageLoader performs asynchronous load attempts: fetch the URL, decode the
// bytes, and hand the outcome back on the UI event thread via the dispatch
// function. Each Load supersedes the previous one; an outcome arriving for a
// superseded attempt is discarded, so a slow earlier fetch can never clobber
// the state of the current URL.
type ImageLoader struct {
	fetcher  resource.Fetcher
	dispatch func(func())
	onResult func(LoadResult)

	mu  sync.Mutex
	gen uint64
}

// NewImageLoader wires a loader to its fetcher and its outcome sink.
// dispatch must marshal the given function onto the UI event thread
// (fyne.Do in the application; tests substitute a direct caller).
func NewImageLoader(f resource.Fetcher, dispatch func(func()), onResult func(LoadResult)) *ImageLoader {
	return &ImageLoader{fetcher: f, dispatch: dispatch, onResult: onResult}
}

// Load starts a load attempt for url. It returns immediately; the outcome
// arrives later through dispatch. No retries, no cache: every call fetches.
func (l *ImageLoader) Load(url string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	go func() {
		res := LoadResult{URL: url}
		body, _, err := l.fetcher.Fetch(url)
		if err != nil {
			res.Err = err
		} else {
			res.Image, res.Info, res.Err = images.Decode(body)
		}

		l.dispatch(func() {
			l.mu.Lock()
			stale := gen != l.gen
			l.mu.Unlock()
			if stale {
				return
			}
			l.onResult(res)
		})
	}()
}

// Cancel discards any in-flight attempt. The fetch itself is not
// interrupted; its outcome is dropped on arrival.
func (l *ImageLoader) Cancel() {
	l.mu.Lock()
	l.gen++
	l.mu.Unlock()
}
