package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DBPath != "gamedex.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.SaveDebounce() != 500*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.SaveDebounce())
	}
	if cfg.ActivePollInterval() != 16*time.Millisecond {
		t.Fatalf("unexpected active poll %v", cfg.ActivePollInterval())
	}
	if cfg.IdlePollInterval() != 500*time.Millisecond {
		t.Fatalf("unexpected idle poll %v", cfg.IdlePollInterval())
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("GAMEDEX_DB_PATH", "/tmp/games.db")
	t.Setenv("GAMEDEX_LIBRARY_PATH", "/tmp/library.json")
	t.Setenv("GAMEDEX_SAVE_DEBOUNCE_MS", "250")
	t.Setenv("GAMEDEX_ACTIVE_POLL_MS", "33")
	t.Setenv("GAMEDEX_IDLE_POLL_MS", "1000")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/games.db" || cfg.LibraryPath != "/tmp/library.json" {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.SaveDebounceMS != 250 || cfg.ActivePollMS != 33 || cfg.IdlePollMS != 1000 {
		t.Fatalf("unexpected intervals: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("GAMEDEX_SAVE_DEBOUNCE_MS", "soon")
	t.Setenv("GAMEDEX_ACTIVE_POLL_MS", "-5")
	t.Setenv("GAMEDEX_IDLE_POLL_MS", "  ")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	def := DefaultRuntimeConfig()
	if cfg.SaveDebounceMS != def.SaveDebounceMS || cfg.ActivePollMS != def.ActivePollMS || cfg.IdlePollMS != def.IdlePollMS {
		t.Fatalf("garbage env must keep defaults: %+v", cfg)
	}
}
