package vartmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookupSyntax_Builtins tests that the built-in dialects are seeded.
func TestLookupSyntax_Builtins(t *testing.T) {
	for _, name := range []string{"classic", "dollar", "permissive"} {
		t.Run(name, func(t *testing.T) {
			syn, ok := LookupSyntax(name)
			require.True(t, ok)
			assert.NoError(t, syn.Validate())
		})
	}

	_, ok := LookupSyntax("no-such-dialect")
	assert.False(t, ok)
}

// TestRegisterSyntax tests registering a custom dialect.
func TestRegisterSyntax(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		angle := Syntax{Open: "<<", Close: ">>", Names: IdentifierNames}
		require.NoError(t, RegisterSyntax("angle", angle))

		syn, ok := LookupSyntax("angle")
		require.True(t, ok)
		assert.Equal(t, "<<", syn.Open)
		assert.Equal(t, ">>", syn.Close)

		tmpl, err := Compile("<<a>>-<<b>>", syn)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, tmpl.Names())
	})

	t.Run("empty name", func(t *testing.T) {
		err := RegisterSyntax("", DollarBrace)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadSyntax)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		err := RegisterSyntax("broken", Syntax{Open: "{"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadSyntax)

		_, ok := LookupSyntax("broken")
		assert.False(t, ok)
	})
}

// TestSyntaxNames tests that names come back sorted.
func TestSyntaxNames(t *testing.T) {
	names := SyntaxNames()
	assert.Contains(t, names, "classic")
	assert.Contains(t, names, "dollar")
	assert.Contains(t, names, "permissive")
	assert.IsIncreasing(t, names)
}
