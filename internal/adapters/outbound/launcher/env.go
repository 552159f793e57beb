package launcher

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// ConfigIDEnv carries the configuration id to the launched process.
const ConfigIDEnv = "SCONE_CONFIG_ID"

// ParseEnv turns KEY=VALUE pairs into a map. Pairs are split on the first '=',
// entries without '=' are dropped and later duplicates win.
func ParseEnv(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// BuildEnv overlays overrides on base (a KEY=VALUE list such as os.Environ())
// and returns a sorted list with one entry per key.
func BuildEnv(base []string, overrides map[string]string) []string {
	merged := ParseEnv(base)
	for k, v := range overrides {
		merged[k] = v
	}

	out := make([]string, 0, len(merged))
	for k, v := range merged {
		out = append(out, k+"="+v)
	}
	// stable ordering for tests
	sort.Strings(out)
	return out
}

// DumpEnviron logs every entry of environ at debug level.
func DumpEnviron(ctx context.Context, logger *slog.Logger, environ []string) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.DebugContext(ctx, "inherited environment", "count", len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		logger.DebugContext(ctx, "env", "key", key, "value", value)
	}
}
