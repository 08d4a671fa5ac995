package preset

import (
	"sync/atomic"

	"github.com/xtding233/packsim/internal/logger"
)

// Store serves the current catalog and swaps it atomically on reload.
type Store struct {
	loader *Loader
	log    *logger.Logger
	cur    atomic.Pointer[Catalog]
}

// NewStore performs the initial load; a bad catalog file is fatal here.
func NewStore(loader *Loader, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	c, err := loader.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{loader: loader, log: log}
	s.cur.Store(c)
	return s, nil
}

// StaticStore serves a fixed catalog and never reloads.
func StaticStore(c *Catalog) *Store {
	s := &Store{loader: nil, log: logger.Nop()}
	s.cur.Store(c)
	return s
}

func (s *Store) Catalog() *Catalog { return s.cur.Load() }

// Reload re-reads the catalog file. On error the previous catalog stays live.
func (s *Store) Reload() error {
	if s.loader == nil {
		return nil
	}
	s.loader.Invalidate()
	c, err := s.loader.Load()
	if err != nil {
		s.log.Warn("preset reload rejected; keeping previous catalog", "path", s.loader.Path(), "error", err)
		return err
	}
	s.cur.Store(c)
	s.log.Info("preset catalog reloaded", "path", s.loader.Path(), "presets", c.Len())
	return nil
}
