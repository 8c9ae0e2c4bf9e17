// Package web embeds the static browser front-end served at /.
package web

import "embed"

//go:embed all:static
var SiteFS embed.FS
