package docnode

//go:generate go tool stringer -type=FunctionScope -trimprefix=Scope -output=scope_string.go

// FunctionScope determines a function's implicit leading parameter and
// decorator line.
type FunctionScope int

const (
	// ScopeModule is a free function: no implicit parameter, no decorator.
	ScopeModule FunctionScope = iota
	// ScopeInstance is an instance method: implicit "self".
	ScopeInstance
	// ScopeClass is a classmethod: implicit "cls", "@classmethod" decorator.
	ScopeClass
	// ScopeStatic is a staticmethod: no implicit parameter,
	// "@staticmethod" decorator.
	ScopeStatic
)
