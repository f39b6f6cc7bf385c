package adapter

import (
	"log/slog"
	"sync"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// WarningsProxy lets code emit warnings before the patching utilities exist.
// Until SetUtilities is called warnings go to the default slog logger.
type WarningsProxy struct {
	mu    sync.RWMutex
	utils m.Utilities
}

// NewWarningsProxy creates a proxy without utilities.
func NewWarningsProxy() *WarningsProxy {
	return &WarningsProxy{}
}

// SetUtilities routes subsequent warnings through utils.
func (wp *WarningsProxy) SetUtilities(utils m.Utilities) {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	wp.utils = utils
}

// Warn emits a warning of the given category.
func (wp *WarningsProxy) Warn(message string, category m.WarningCategory) {
	wp.mu.RLock()
	utils := wp.utils
	wp.mu.RUnlock()

	if utils == nil {
		slog.Warn(message, "category", string(category))
		return
	}

	utils.EmitWarning(message, category)
}
