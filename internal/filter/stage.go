package filter

import (
	"sync"

	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// Stage is a pipeline node that applies a filter to a remembered source image.
//
// Stage is safe for concurrent use. SetSource followed by Update is two
// separate steps, so concurrent callers that each want their own source
// should use Run, which performs both under one lock.
type Stage struct {
	mu     sync.Mutex
	filter Filter
	source *raster.Image
}

// NewStage creates a stage around f with no source image.
func NewStage(f Filter) *Stage {
	return &Stage{filter: f}
}

// Name returns the wrapped filter's name.
func (s *Stage) Name() string { return s.filter.Name() }

// SetSource sets the image used by the next Update.
func (s *Stage) SetSource(img *raster.Image) {
	s.mu.Lock()
	s.source = img
	s.mu.Unlock()
}

// Source returns the current source image, or nil if none was set.
func (s *Stage) Source() *raster.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Update recomputes the filter output from the current source.
// It returns ErrNoSource if no source was set.
func (s *Stage) Update() (*raster.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update()
}

// Run sets img as the source and updates in one step.
func (s *Stage) Run(img *raster.Image) (*raster.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = img
	return s.update()
}

func (s *Stage) update() (*raster.Image, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}
	return s.filter.Update(s.source)
}
