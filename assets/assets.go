package assets

import "embed"

// Assets holds the stylesheet, the shell script and the static images served
// under /assets.
//
//go:embed css js static
var Assets embed.FS
