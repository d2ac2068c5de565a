// Package all pulls in the built-in extensions. Blank-importing it is
// enough to register every standard command.
package all

import (
	// Each extension registers itself via init()
	_ "github.com/jpl-au/docdex/extension/core"
	_ "github.com/jpl-au/docdex/extension/document"
	_ "github.com/jpl-au/docdex/extension/search"
)
