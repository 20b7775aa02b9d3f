package search

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "search"

// Graph renders the root lines of a result as a DOT graph: one node for the
// position and one edge per searched root move, the chosen move in bold.
func Graph(res Result) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return nil, errors.WithStack(err)
	}

	rootLabel := fmt.Sprintf("depth %d\nscore %d\nnodes %d", res.Depth, res.Score, res.Nodes)
	if err := g.AddNode(graphName, "root", map[string]string{
		"label": strconv.Quote(rootLabel),
		"shape": "box",
	}); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, l := range res.Lines {
		name := fmt.Sprintf("m%d", i)
		if err := g.AddNode(graphName, name, map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%v\n%d", l.Move, l.Score)),
		}); err != nil {
			return nil, errors.WithStack(err)
		}
		attrs := map[string]string{"label": strconv.Quote(l.Move.String())}
		if res.Found && l.Move.Same(res.Move) {
			attrs["style"] = "bold"
		}
		if err := g.AddEdge("root", name, true, attrs); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return g, nil
}
