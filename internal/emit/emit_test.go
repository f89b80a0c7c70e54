package emit

import (
	"bytes"
	"testing"

	"github.com/servo/spectool/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOT(t *testing.T) {
	edges := []extract.TransitionEdge{
		{Source: "Data", Target: "Rawtext"},
		{Source: "Data", Target: "Data"},
		{Source: "Rawtext", Target: "BeforeAttributeName"},
	}

	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, edges))

	want := `strict digraph {
    Data -> Rawtext;
    Data -> Data;
    Rawtext -> BeforeAttributeName;
}
`
	assert.Equal(t, want, buf.String())
}

func TestDOTEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, nil))
	assert.Equal(t, "strict digraph {\n}\n", buf.String())
}

func TestStates(t *testing.T) {
	states := []extract.StateDefinition{
		{Raw: "Data state", Ident: "Data"},
		{Raw: "RAWTEXT state", Ident: "Rawtext"},
		{Raw: "Before attribute name state", Ident: "BeforeAttributeName"},
	}

	var buf bytes.Buffer
	require.NoError(t, States(&buf, "tokenizer", states))

	want := `// Code generated by spectool; DO NOT EDIT.

package tokenizer

// State identifies a tokenizer state from the specification.
type State int

const (
	Data State = iota
	Rawtext
	BeforeAttributeName
)
`
	assert.Equal(t, want, buf.String())
}

func TestOutputIsByteIdenticalAcrossRuns(t *testing.T) {
	edges := []extract.TransitionEdge{{Source: "A", Target: "B"}}
	states := []extract.StateDefinition{{Raw: "A state", Ident: "A"}}

	var first, second bytes.Buffer
	require.NoError(t, DOT(&first, edges))
	require.NoError(t, DOT(&second, edges))
	assert.Equal(t, first.Bytes(), second.Bytes())

	first.Reset()
	second.Reset()
	require.NoError(t, States(&first, "states", states))
	require.NoError(t, States(&second, "states", states))
	assert.Equal(t, first.Bytes(), second.Bytes())
}
