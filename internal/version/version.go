// Package version exposes the converter's release version.
package version

import (
	"bytes"
	_ "embed"
)

//go:embed version.txt
var versionBytes []byte

// Version returns the version string from version.txt.
func Version() string {
	return string(bytes.TrimSpace(versionBytes))
}
