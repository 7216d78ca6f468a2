// Package static embeds the API documentation assets served under /docs
// and /static.
package static

import "embed"

const OpenAPIUI = "openapi.html"

//go:embed openapi.html openapi.json
var FS embed.FS
