package confgen

import _ "embed"

// Version is the release version of confgen.
//
//go:embed VERSION
var Version string
