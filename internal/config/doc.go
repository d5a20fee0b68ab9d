// Package config loads and validates the mangler configuration file.
//
// Configuration is TOML. Load resolves the file in this order: an explicit
// path, ~/.config/mangler/config.toml, then ./mangler.toml in the working
// directory; a missing file yields the defaults. All path fields are
// tilde-expanded and made absolute before validation.
package config
