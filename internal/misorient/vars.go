package misorient

var (
	Debug = debugBuild // verbose debug output; on by default under -tags debug
	// Compile time checks that both renderers satisfy the reporter interface
	_ reporter = textReporter{}
	_ reporter = jsonReporter{}
)
