package normalize

import "strings"

// ToLowerDotPath normalizes a settings key to a lowercase dot-separated path.
// Double underscores (__) are treated as level separators and converted to
// dots. Single underscores within a level are preserved.
// Examples:
//   - "SIG_FIGS__VALUE" → "sig_figs.value"
//   - "ERROR_METHOD" → "error_method"
//   - "MONTE_CARLO__TRIALS" → "monte_carlo.trials"
func ToLowerDotPath(key string) string {
	normalized := strings.ReplaceAll(key, "__", ".")
	return strings.ToLower(normalized)
}
