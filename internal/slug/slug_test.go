package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func TestGenerate_Normalization(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple lowercase", input: "tonic", expected: "tonic"},
		{name: "mixed case", input: "Bombay Sapphire", expected: "bombay-sapphire"},
		{name: "punctuation runs collapse", input: "Gin & Tonic!!", expected: "gin-tonic"},
		{name: "leading and trailing junk trimmed", input: "  --Mojito--  ", expected: "mojito"},
		{name: "digits kept", input: "7UP", expected: "7up"},
		{name: "empty falls back", input: "", expected: "item"},
		{name: "only symbols falls back", input: "!!!", expected: "item"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Generate(tc.input, nil))
		})
	}
}

func TestGenerate_CollisionSuffixes(t *testing.T) {
	existing := ids()

	for _, expected := range []string{"mojito", "mojito-1", "mojito-2", "mojito-3"} {
		got := Generate("Mojito", existing)
		assert.Equal(t, expected, got)
		_, taken := existing[got]
		assert.False(t, taken, "generated id must not collide with the existing set")
		existing[got] = struct{}{}
	}
}

func TestGenerate_FallbackCollision(t *testing.T) {
	assert.Equal(t, "item-1", Generate("???", ids("item")))
}

func TestGenerate_FirstFreeSuffixWins(t *testing.T) {
	// Suffixes count from 1 and the first free one is taken, even in a gap.
	assert.Equal(t, "cola-2", Generate("Cola", ids("cola", "cola-1", "cola-3")))
}
