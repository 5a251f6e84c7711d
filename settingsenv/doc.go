// Package settingsenv loads uncert settings overrides from environment variables.
//
// Key normalization: SIG_FIGS__VALUE → sig_figs.value, ERROR_METHOD → error_method
//
// Example:
//
//	source := settingsenv.New(settingsenv.Options{Prefix: "UNCERT_"})
//	err := uncert.ApplySettings(ctx, uncert.GlobalSettings(), source)
package settingsenv
