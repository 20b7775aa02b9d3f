package search

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	g := mustFEN(t, backRankMate)
	res, err := newSearcher(t, g).Root(1, time.Time{})
	require.NoError(t, err)

	graph, err := Graph(res)
	require.NoError(t, err)
	assert.Len(t, graph.Nodes.Nodes, len(res.Lines)+1)
	assert.Len(t, graph.Edges.Edges, len(res.Lines))

	var bold int
	for _, e := range graph.Edges.Edges {
		if e.Attrs["style"] == "bold" {
			bold++
			assert.Contains(t, e.Attrs["label"], "Ra8")
		}
	}
	assert.Equal(t, 1, bold)

	out := graph.String()
	assert.True(t, strings.HasPrefix(out, "digraph search"), out)
}

func TestGraphEmptyResult(t *testing.T) {
	graph, err := Graph(Result{})
	require.NoError(t, err)
	assert.Len(t, graph.Nodes.Nodes, 1)
	assert.Empty(t, graph.Edges.Edges)
}
