package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mmcdole/pagemark/internal/domain"
)

// Backend names accepted in configuration
const (
	BackendBolt   = "bolt"
	BackendBadger = "badger"
)

// Open creates the slot store for the configured backend.
// dir is the data directory; empty keeps everything in memory.
func Open(backend, dir string, logger *slog.Logger) (domain.SlotStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendBolt:
		s, err := NewBoltStore(dir)
		if err != nil {
			return nil, err
		}
		logger.Info("opened slot store", "backend", BackendBolt, "dir", dir)
		return s, nil

	case BackendBadger:
		badgerDir := dir
		if badgerDir != "" {
			badgerDir = filepath.Join(dir, "badger")
		}
		s, err := NewBadgerStore(badgerDir)
		if err != nil {
			return nil, err
		}
		logger.Info("opened slot store", "backend", BackendBadger, "dir", badgerDir)
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}
