// Package assets is the loader-side boundary of the style engine: it owns
// raw stylesheet text and hands it to the cache through a css.TextProvider.
// Handles stay stable for the lifetime of a source so the cache's identity
// contract holds.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"uicss/css"
)

// HandleForPath derives a stable, readable handle from a file path. The
// same path always yields the same handle.
func HandleForPath(path string) css.Handle {
	return css.Handle(slug.Make(filepath.ToSlash(filepath.Clean(path))))
}

// NewHandle mints a unique handle for inline or anonymous stylesheet
// sources that have no path of their own.
func NewHandle() css.Handle {
	return css.Handle(uuid.NewString())
}

// Store keeps raw stylesheet text per handle. Like the sheet cache it is
// read-mostly shared state guarded by a read-write lock.
type Store struct {
	mu    sync.RWMutex
	texts map[css.Handle]string
	log   *zap.Logger
}

// NewStore creates an empty asset store.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		texts: make(map[css.Handle]string),
		log:   log.Named("style-assets"),
	}
}

// LoadFile reads a stylesheet file and stores its text under the path's
// handle. Payloads recognized as binary (images, archives, fonts) are
// rejected - a stylesheet source must be text.
func (s *Store) LoadFile(path string) (css.Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read stylesheet '%s': %w", path, err)
	}

	if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
		return "", fmt.Errorf("stylesheet '%s' is not text (detected %s)", path, t.MIME.Value)
	}

	h := HandleForPath(path)
	s.Put(h, string(data))
	s.log.Debug("Loaded stylesheet file",
		zap.String("path", path),
		zap.String("handle", string(h)),
		zap.Int("bytes", len(data)))
	return h, nil
}

// Put stores stylesheet text under a handle, replacing any previous text.
func (s *Store) Put(h css.Handle, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[h] = text
}

// Forget drops the text for a handle. Subsequent provider lookups report
// the asset as unavailable until the source is loaded again.
func (s *Store) Forget(h css.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.texts, h)
}

// Get returns the stored text for a handle.
func (s *Store) Get(h css.Handle) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.texts[h]
	return text, ok
}

// Provider adapts the store to the cache's text provider interface.
func (s *Store) Provider() css.TextProvider {
	return s.Get
}
