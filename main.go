/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/jpl-au/docdex/cmd"

	// Pull in every extension; each registers itself via init()
	_ "github.com/jpl-au/docdex/extension/all"
)

func main() {
	cmd.Execute()
}
