// Package web embeds the static quiz page served at "/".
package web

import "embed"

// StaticDir is the directory inside Assets holding the page.
const StaticDir = "static"

//go:embed static
var Assets embed.FS
