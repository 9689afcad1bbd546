// Package file stores vitrine's settings in ~/.vitrine/config.toml.
package file
