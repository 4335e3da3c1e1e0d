package nodejs

// ParseParseableList exports parseParseableList for testing.
var ParseParseableList = parseParseableList //nolint:gochecknoglobals // test export

// ParseTreeList exports parseTreeList for testing.
var ParseTreeList = parseTreeList //nolint:gochecknoglobals // test export

// StripVersion exports stripVersion for testing.
var StripVersion = stripVersion //nolint:gochecknoglobals // test export
