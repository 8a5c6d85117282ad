package centurion

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Core || !cfg.Image || !cfg.Mixer || !cfg.TTF || cfg.Pinned {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.CoreFlags != InitEverything || cfg.MixerChunkSize != 2048 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestInit_PinnedDo(t *testing.T) {
	lib, err := Init(Config{Core: true, CoreFlags: InitEvents | InitTimer, Pinned: true})
	if err != nil {
		t.Skipf("SDL unavailable: %v", err)
	}
	if !lib.Pinned() {
		t.Fatalf("expected a pinned library")
	}

	var ran int
	for range 3 {
		lib.Do(func() { ran++ })
	}
	if ran != 3 {
		t.Fatalf("Do ran %d actions", ran)
	}

	lib.Close()
	lib.Close()
	if lib.Pinned() {
		t.Fatalf("Close should stop the native thread")
	}

	lib.Do(func() { ran++ })
	if ran != 4 {
		t.Fatalf("Do should run inline once the native thread is stopped")
	}
}

func TestInit_Unpinned(t *testing.T) {
	lib, err := Init(Config{Core: true, CoreFlags: InitEvents})
	if err != nil {
		t.Skipf("SDL unavailable: %v", err)
	}
	defer lib.Close()
	if lib.Pinned() || lib.Config().CoreFlags != InitEvents {
		t.Fatalf("unexpected library state")
	}
}
