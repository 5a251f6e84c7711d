package settingsenv

import (
	"context"
	"os"
	"strings"

	"github.com/qetlabs/uncert"
	"github.com/qetlabs/uncert/internal/normalize"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix filters vars starting with prefix (stripped before normalization).
	// Empty = load all vars.
	// Prefix matching is case-insensitive unless CaseSensitive is set.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// Keys are always normalized to lowercase after prefix stripping.
	CaseSensitive bool
}

type envSource struct {
	opts Options
}

// New creates an environment variable settings source.
func New(opts Options) uncert.SettingsSource {
	return &envSource{opts: opts}
}

// Load scans environment variables, filters by prefix, and normalizes keys.
func (e *envSource) Load(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := parts[1]

		if e.opts.Prefix != "" {
			var hasPrefix bool
			if e.opts.CaseSensitive {
				hasPrefix = strings.HasPrefix(key, e.opts.Prefix)
			} else {
				hasPrefix = strings.HasPrefix(strings.ToUpper(key), strings.ToUpper(e.opts.Prefix))
			}

			if !hasPrefix {
				continue
			}
			key = key[len(e.opts.Prefix):]
		}

		if key == "" {
			continue
		}

		// Normalize: SIG_FIGS__VALUE → sig_figs.value
		normalizedKey := normalize.ToLowerDotPath(key)
		result[normalizedKey] = value
	}

	return result, nil
}

// Name returns a human-readable identifier for this source.
func (e *envSource) Name() string {
	if e.opts.Prefix != "" {
		return "env:" + e.opts.Prefix + "*"
	}
	return "env"
}
