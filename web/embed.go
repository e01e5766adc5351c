// Package web holds the embedded routine builder page. This package
// exists to satisfy go:embed's requirement that embedded files reside in
// or below the embedding package directory.
package web

import _ "embed"

// IndexHTML is the routine builder single-page UI served at /.
//
//go:embed index.html
var IndexHTML string
