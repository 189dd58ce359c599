// Package file persists bikeshare settings to a TOML file on disk.
//
// The ConfigStore keeps dotted keys such as "viewer.page_size" in memory and
// writes them back as nested TOML tables, by default to ~/.bikeshare/config.toml.
package file
