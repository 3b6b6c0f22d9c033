// Package web holds the embedded landing page served at "/".
package web

import _ "embed"

//go:embed static/index.html
var IndexHTML []byte
