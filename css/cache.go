package css

import (
	"sync"

	"go.uber.org/zap"
)

// Handle is the opaque, stable identity of a stylesheet source. The
// collaborator owning the asset guarantees the same source maps to the
// same handle until explicitly changed.
type Handle string

// TextProvider supplies the raw text for a stylesheet handle. The second
// return is false while the underlying asset is not yet available.
type TextProvider func(Handle) (string, bool)

// Cache memoizes parse results per stylesheet handle. It is an explicit
// injected service, shared and read-mostly: many concurrent lookups, with
// exclusive access only on insert and invalidate. Cached sheets are
// immutable; reload replaces the entry wholesale.
type Cache struct {
	mu     sync.RWMutex
	sheets map[Handle]*ParsedStylesheet
	parser *Parser
	log    *zap.Logger
}

// NewCache creates an empty stylesheet cache.
func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		sheets: make(map[Handle]*ParsedStylesheet),
		parser: NewParser(log),
		log:    log.Named("sheet-cache"),
	}
}

// GetOrParse returns the cached sheet for h, parsing and inserting it on
// first reference. When the provider cannot supply the text yet the result
// is an empty, uncached sheet - the caller retries once the asset shows up.
// The returned sheet is shared and must be treated as read-only.
func (c *Cache) GetOrParse(h Handle, text TextProvider) *ParsedStylesheet {
	c.mu.RLock()
	sheet, ok := c.sheets[h]
	c.mu.RUnlock()
	if ok {
		return sheet
	}

	if text == nil {
		return NewParsedStylesheet()
	}
	raw, ok := text(h)
	if !ok {
		c.log.Debug("Stylesheet not available yet", zap.String("handle", string(h)))
		return NewParsedStylesheet()
	}

	parsed := c.parser.Parse([]byte(raw), string(h))

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have parsed the same source meanwhile - keep
	// the existing entry so every reader observes one instance.
	if existing, ok := c.sheets[h]; ok {
		return existing
	}
	c.sheets[h] = parsed
	c.log.Debug("Cached stylesheet",
		zap.String("handle", string(h)),
		zap.Int("rules", len(parsed.Styles)),
		zap.Int("keyframes", len(parsed.Keyframes)))
	return parsed
}

// Invalidate removes the cached entry for h. Once it returns, every
// subsequent GetOrParse for h reparses; calls already in flight may still
// observe the old sheet.
func (c *Cache) Invalidate(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sheets[h]; ok {
		delete(c.sheets, h)
		c.log.Debug("Invalidated stylesheet", zap.String("handle", string(h)))
	}
}

// Len returns the number of cached sheets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sheets)
}
