package embed

import "embed"

// DistFS holds the single-page GUI served by the gin server.
//
//go:embed all:dist
var DistFS embed.FS
