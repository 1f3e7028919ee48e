package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_BuildsGraph(t *testing.T) {
	g, err := ParseArgs([]string{"1-2", "2-3", "1-3"})
	require.NoError(t, err)
	assert.Len(t, g.Edges, 3)
	assert.ElementsMatch(t, []int64{1, 2, 3}, g.Vertices)
}

func TestParseArgs_RejectsZeroEdges(t *testing.T) {
	_, err := ParseArgs(nil)
	assert.Error(t, err)
}

func TestParseArgs_RejectsMalformedEdge(t *testing.T) {
	_, err := ParseArgs([]string{"foo-1"})
	assert.Error(t, err)
}
