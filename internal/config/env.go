package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// lookup returns the trimmed value of key; blank values count as unset.
func lookup(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func envOrDefault(key, defaultValue string) string {
	if val, ok := lookup(key); ok {
		return val
	}
	return defaultValue
}

// listEnvOrDefault splits a comma-separated value, dropping blank entries.
// An unset key or a value with no entries yields the split default.
func listEnvOrDefault(key, defaultValue string) []string {
	if raw, ok := lookup(key); ok {
		if list := splitList(raw); len(list) > 0 {
			return list
		}
	}
	return splitList(defaultValue)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// durationEnvOrDefault accepts Go durations ("750ms") or bare seconds ("2").
// Non-positive or unparsable values fall back to the default.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		secs, atoiErr := strconv.Atoi(raw)
		if atoiErr != nil {
			return defaultValue
		}
		parsed = time.Duration(secs) * time.Second
	}
	if parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
