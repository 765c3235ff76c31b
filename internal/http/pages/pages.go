// Package pages holds the static HTML served on / and /about.
package pages

import _ "embed"

//go:embed index.html
var index []byte

//go:embed about.html
var about []byte

// Index returns the home page.
func Index() []byte { return index }

// About returns the about page.
func About() []byte { return about }
