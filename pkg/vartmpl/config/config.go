// Package config loads named syntax definitions from YAML or JSON files.
//
// A definitions file maps dialect names to their delimiters and name
// character class:
//
//	syntaxes:
//	  angle:
//	    open: "<<"
//	    close: ">>"
//	    names: identifier
//	  loose:
//	    open: "${"
//	    close: "}"
//	    names: permissive
//
// Load the file and pass the resulting Syntax values to vartmpl.Compile
// or vartmpl.New, or push them into the process-wide registry with
// Register.
package config

import (
	"fmt"

	"github.com/randalmurphal/vartmpl/pkg/vartmpl"
)

// Definition is the on-disk form of one syntax dialect.
type Definition struct {
	// Open is the literal open delimiter, e.g. "${".
	Open string `yaml:"open" json:"open"`

	// Close is the literal close delimiter, e.g. "}".
	Close string `yaml:"close" json:"close"`

	// Names selects the name character class: "identifier" (default) or
	// "permissive".
	Names string `yaml:"names" json:"names"`
}

// file is the top-level document shape.
type file struct {
	Syntaxes map[string]Definition `yaml:"syntaxes" json:"syntaxes"`
}

// nameClasses maps the Names field values to predicates.
var nameClasses = map[string]vartmpl.NameClass{
	"":           vartmpl.IdentifierNames,
	"identifier": vartmpl.IdentifierNames,
	"permissive": vartmpl.PermissiveNames,
}

// syntax converts a Definition to a validated Syntax.
func (d Definition) syntax() (vartmpl.Syntax, error) {
	names, ok := nameClasses[d.Names]
	if !ok {
		return vartmpl.Syntax{}, fmt.Errorf("unknown name class %q", d.Names)
	}
	syn := vartmpl.Syntax{Open: d.Open, Close: d.Close, Names: names}
	if err := syn.Validate(); err != nil {
		return vartmpl.Syntax{}, err
	}
	return syn, nil
}

// Register pushes every syntax in the map into the process-wide vartmpl
// registry, making it available via vartmpl.LookupSyntax.
func Register(syntaxes map[string]vartmpl.Syntax) error {
	for name, syn := range syntaxes {
		if err := vartmpl.RegisterSyntax(name, syn); err != nil {
			return err
		}
	}
	return nil
}
