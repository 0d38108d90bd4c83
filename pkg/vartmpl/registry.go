package vartmpl

import (
	"fmt"
	"sort"
	"sync"
)

// syntaxRegistry maps dialect names to Syntax values. Seeded with the
// built-in syntaxes; the config subpackage registers file-defined ones.
var syntaxRegistry = struct {
	mu sync.RWMutex
	m  map[string]Syntax
}{
	m: map[string]Syntax{
		"classic":    ClassicBrace,
		"dollar":     DollarBrace,
		"permissive": Permissive,
	},
}

// RegisterSyntax adds or replaces a named syntax. The syntax is validated
// first; registration of an invalid descriptor fails.
//
// The registry is explicit: nothing consults it implicitly, callers look
// dialects up by name and pass the result to Compile or New.
func RegisterSyntax(name string, syn Syntax) error {
	if name == "" {
		return fmt.Errorf("%w: empty registry name", ErrBadSyntax)
	}
	if err := syn.Validate(); err != nil {
		return fmt.Errorf("register syntax %q: %w", name, err)
	}

	syntaxRegistry.mu.Lock()
	defer syntaxRegistry.mu.Unlock()
	syntaxRegistry.m[name] = syn
	return nil
}

// LookupSyntax returns the syntax registered under name.
func LookupSyntax(name string) (Syntax, bool) {
	syntaxRegistry.mu.RLock()
	defer syntaxRegistry.mu.RUnlock()
	syn, ok := syntaxRegistry.m[name]
	return syn, ok
}

// SyntaxNames returns the registered dialect names in ascending order.
func SyntaxNames() []string {
	syntaxRegistry.mu.RLock()
	defer syntaxRegistry.mu.RUnlock()
	names := make([]string, 0, len(syntaxRegistry.m))
	for name := range syntaxRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
