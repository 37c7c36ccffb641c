// Package templates holds the templ components and static assets served by the web UI.
package templates

import "embed"

// FS holds static assets served under /assets/.
//
//go:embed assets
var FS embed.FS
