package config

// MaxArity bounds the total argument count (inputs plus outputs) of a single
// operation call. Calls longer than this are rejected before any handler
// runs.
const MaxArity = 32

// OutKeyword is the keyword entry trailing output arguments are folded into
// during call normalization.
const OutKeyword = "out"

// Operation method names
const (
	MethodCall       = "call"
	MethodReduce     = "reduce"
	MethodAccumulate = "accumulate"
	MethodOuter      = "outer"
	MethodAt         = "at"
)

// ScenarioFileExtensions are all recognized scenario file extensions
var ScenarioFileExtensions = []string{".yaml", ".yml"}
