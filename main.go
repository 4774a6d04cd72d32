// Package main is the gitwip command: it reports the state of git working
// copies and optionally pulls those behind their remote.
package main

import "github.com/apiarycd/gitwip/internal"

func main() {
	internal.Run()
}
