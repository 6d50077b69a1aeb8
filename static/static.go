package static

import "embed"

//go:embed js
var FS embed.FS
