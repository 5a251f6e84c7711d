// Package settingsfile loads uncert settings overrides from YAML, JSON, or TOML files.
//
// Nested documents flatten to dot-separated keys:
//
//	sig_figs:
//	  mode: error
//	  value: 2
//
// becomes sig_figs.mode and sig_figs.value.
//
// Example:
//
//	source := settingsfile.New("uncert.yaml", settingsfile.Options{})
//	err := uncert.ApplySettings(ctx, uncert.GlobalSettings(), source)
package settingsfile
