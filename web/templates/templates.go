// Package templates embeds the HTML views served by the web handlers.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
