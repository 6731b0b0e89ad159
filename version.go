package patina

import (
	_ "embed"
)

// Version is the library version, sourced from the VERSION file.
//
//go:embed VERSION
var Version string
