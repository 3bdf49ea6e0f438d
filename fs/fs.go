// Package appfs embeds files needed at runtime, keeping the built binary
// self-contained.
package appfs

import "embed"

//go:embed migrations
var FS embed.FS
