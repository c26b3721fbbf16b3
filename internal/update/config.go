package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DBPath         string
	LibraryPath    string
	SaveDebounceMS int
	ActivePollMS   int
	IdlePollMS     int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:         "gamedex.db",
		LibraryPath:    "",
		SaveDebounceMS: 500,
		ActivePollMS:   16,
		IdlePollMS:     500,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("GAMEDEX_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("GAMEDEX_LIBRARY_PATH"); ok {
		cfg.LibraryPath = v
	}
	if v, ok := getEnvInt("GAMEDEX_SAVE_DEBOUNCE_MS"); ok && v > 0 {
		cfg.SaveDebounceMS = v
	}
	if v, ok := getEnvInt("GAMEDEX_ACTIVE_POLL_MS"); ok && v > 0 {
		cfg.ActivePollMS = v
	}
	if v, ok := getEnvInt("GAMEDEX_IDLE_POLL_MS"); ok && v > 0 {
		cfg.IdlePollMS = v
	}
	return cfg
}

func (c RuntimeConfig) SaveDebounce() time.Duration {
	return time.Duration(c.SaveDebounceMS) * time.Millisecond
}

func (c RuntimeConfig) ActivePollInterval() time.Duration {
	return time.Duration(c.ActivePollMS) * time.Millisecond
}

func (c RuntimeConfig) IdlePollInterval() time.Duration {
	return time.Duration(c.IdlePollMS) * time.Millisecond
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
