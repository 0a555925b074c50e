package casecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle_FullLoop(t *testing.T) {
	steps := []string{
		"hello_world",
		"hello-world",
		"hello world",
		"HELLO WORLD",
		"Hello World",
		"helloWorld",
		"HelloWorld",
		"hello_world",
	}
	for i := 0; i+1 < len(steps); i++ {
		assert.Equal(t, steps[i+1], Cycle(steps[i]), "Cycle(%q)", steps[i])
	}
}

func TestCycle_SevenStepsReturnToStart(t *testing.T) {
	for _, start := range []string{"hello_world", "userIdToken", "Http Request Body", "mixed Case input"} {
		// The first step may normalise an unrecognised casing; the loop starts from there.
		first := Cycle(start)
		lap := first
		for i := 0; i < len(Order); i++ {
			lap = Cycle(lap)
		}
		assert.Equal(t, first, lap, "start=%q", start)
	}
}

func TestCycle_EdgeCases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "punctuation only", in: "!!!", want: "!!!"},
		{name: "whitespace only", in: "   ", want: "   "},
		{name: "acronym", in: "PDFLoader", want: "pdf_loader"},
		{name: "single upper word is pascal", in: "HELLO", want: "hello"},
		{name: "single lower word", in: "hello", want: "HELLO"},
		{name: "mixed words with space", in: "hello World", want: "HELLO WORLD"},
		{name: "digits only", in: "123", want: "123"},
		{name: "tab separated lower", in: "hello\tworld", want: "hello world"},
		{name: "leading digit camel", in: "3dModel", want: "3d model"},
		{name: "repeated delimiters", in: "foo__bar--baz", want: "foo-bar-baz"},
		{name: "unicode words", in: "über_straße", want: "über-straße"},
		{name: "symbol word kept", in: "a / b", want: "A / B"},
		{name: "symbol breaks title", in: "Hello & World", want: "HELLO & WORLD"},
		{name: "assignment", in: "x = y", want: "X = Y"},
		{name: "plus", in: "foo + bar", want: "FOO + BAR"},
		{name: "symbols and spaces only", in: "& / =", want: "& / ="},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Cycle(tc.in))
		})
	}
}

func TestCycle_IsPure(t *testing.T) {
	for _, in := range []string{"hello_world", "PDFLoader", "Hello World"} {
		assert.Equal(t, Cycle(in), Cycle(in))
	}
}

func TestFormatThenClassify_RoundTrips(t *testing.T) {
	words := []string{"hello", "world"}
	for _, st := range Order {
		out := Format(st, words)
		require.Equal(t, st, Classify(out, Segment(out)), "style %s rendered as %q", st, out)
	}
}

func TestExplain(t *testing.T) {
	res := Explain("PDFLoader")
	assert.Equal(t, []string{"PDF", "Loader"}, res.Words)
	assert.Equal(t, Pascal, res.Detected)
	assert.Equal(t, Snake, res.Target)
	assert.True(t, res.Changed())

	res = Explain("!!!")
	assert.Empty(t, res.Words)
	assert.False(t, res.Changed())
}

func TestConvert(t *testing.T) {
	assert.Equal(t, "http-request-body", Convert("HTTPRequestBody", Kebab))
	assert.Equal(t, "", Convert("", Camel))
	assert.Equal(t, "!!!", Convert("!!!", Snake))
	assert.Equal(t, "a_&_b", Convert("A & B", Snake))
}
