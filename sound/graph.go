// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"slices"

	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
)

// Node is a handle to a Block owned by a Graph. Handles stay valid for the
// lifetime of the graph.
type Node int

const (
	inputNode  Node = 0
	outputNode Node = 1
)

// Edge is a connection from the output of one node to the input of another.
type Edge struct {
	From Node
	To   Node
}

// Graph is a signal flow graph of Blocks. The graph owns every Block it
// holds; they are reachable only through handles and Modify.
//
// Two nodes always exist: the input gain, which receives the external
// input, and the output gain, whose result is the graph's output.
type Graph[S sample.Frame[S]] struct {
	blocks []Block[S]
	// successors of every node in insertion order
	edges [][]Node

	order    []Node
	feedback []Edge
}

// NewGraph returns a graph holding only the input and output gains, wired
// to nothing.
func NewGraph[S sample.Frame[S]](inGain, outGain float64) *Graph[S] {
	g := &Graph[S]{
		blocks: []Block[S]{
			FromModifier[S](modifiers.NewGain[S](inGain)),
			FromModifier[S](modifiers.NewGain[S](outGain)),
		},
		edges: [][]Node{nil, nil},
	}
	g.reorder()

	return g
}

// InputNode is the handle of the input gain.
func (g *Graph[S]) InputNode() Node { return inputNode }

// OutputNode is the handle of the output gain.
func (g *Graph[S]) OutputNode() Node { return outputNode }

// Len is the number of nodes, the two gains included.
func (g *Graph[S]) Len() int { return len(g.blocks) }

func (g *Graph[S]) valid(n Node) bool {
	return n >= 0 && int(n) < len(g.blocks)
}

// AddBlock moves b into the graph and returns its handle. The caller must
// not keep using the generator or modifier inside b.
func (g *Graph[S]) AddBlock(b Block[S]) Node {
	g.blocks = append(g.blocks, b)
	g.edges = append(g.edges, nil)
	g.reorder()

	return Node(len(g.blocks) - 1)
}

// AddConnection feeds the output of from into the input of to. Adding an
// existing connection does nothing.
func (g *Graph[S]) AddConnection(from, to Node) error {
	if err := g.checkEdge(from, to); err != nil {
		return err
	}

	if slices.Contains(g.edges[from], to) {
		return nil
	}

	g.edges[from] = append(g.edges[from], to)
	g.reorder()

	return nil
}

// RemoveConnection deletes the connection from -> to. Removing a missing
// connection does nothing.
func (g *Graph[S]) RemoveConnection(from, to Node) error {
	if err := g.checkEdge(from, to); err != nil {
		return err
	}

	i := slices.Index(g.edges[from], to)
	if i < 0 {
		return nil
	}

	g.edges[from] = slices.Delete(g.edges[from], i, i+1)
	g.reorder()

	return nil
}

func (g *Graph[S]) checkEdge(from, to Node) error {
	switch {
	case !g.valid(from):
		return fmt.Errorf("%w: %d", ErrUnknownNode, from)
	case !g.valid(to):
		return fmt.Errorf("%w: %d", ErrUnknownNode, to)
	case to == inputNode:
		return ErrIntoInputGain
	case from == outputNode:
		return ErrFromOutputGain
	}

	return nil
}

// HasConnection reports whether from feeds to.
func (g *Graph[S]) HasConnection(from, to Node) bool {
	return g.valid(from) && slices.Contains(g.edges[from], to)
}

// Successors returns the nodes fed by n in the order they were connected.
func (g *Graph[S]) Successors(n Node) []Node {
	if !g.valid(n) {
		return nil
	}

	return slices.Clone(g.edges[n])
}

// Order returns the process order: every node exactly once, the input gain
// first and the output gain last.
func (g *Graph[S]) Order() []Node {
	return slices.Clone(g.order)
}

// Feedback returns the connections that point backwards in the process
// order. Their contribution reaches the target one sample late.
func (g *Graph[S]) Feedback() []Edge {
	return slices.Clone(g.feedback)
}

// Modify runs fn with the Block behind n. The pointer must not be retained
// after fn returns.
func (g *Graph[S]) Modify(n Node, fn func(b *Block[S])) error {
	if !g.valid(n) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, n)
	}

	fn(&g.blocks[n])

	return nil
}

// gain returns the Gain modifier of one of the two gain nodes, or nil if
// Modify replaced it.
func (g *Graph[S]) gain(n Node) *modifiers.Gain[S] {
	m, _ := g.blocks[n].mod.(*modifiers.Gain[S])
	return m
}

func (g *Graph[S]) setGain(n Node, v float64) {
	if m := g.gain(n); m != nil {
		m.SetGain(v)
	}
}

func (g *Graph[S]) gainOf(n Node) float64 {
	if m := g.gain(n); m != nil {
		return m.Gain()
	}
	return 0
}

// SetInputGain sets the gain applied to the external input.
func (g *Graph[S]) SetInputGain(v float64) { g.setGain(inputNode, v) }

// InputGain returns the input gain, or 0 if Modify replaced its modifier.
func (g *Graph[S]) InputGain() float64 { return g.gainOf(inputNode) }

// SetOutputGain sets the gain applied to the graph output.
func (g *Graph[S]) SetOutputGain(v float64) { g.setGain(outputNode, v) }

// OutputGain returns the output gain, or 0 if Modify replaced its modifier.
func (g *Graph[S]) OutputGain() float64 { return g.gainOf(outputNode) }

// Process runs the graph for one sample: the input gain is primed with x,
// then every node is processed in order and primes its successors with its
// result. The output gain's result is returned.
func (g *Graph[S]) Process(x S) S {
	g.blocks[inputNode].Prime(x)

	var out S
	for _, n := range g.order {
		out = g.blocks[n].Process()
		for _, to := range g.edges[n] {
			g.blocks[to].Prime(out)
		}
	}

	return out
}

// Clone deep copies the graph. Inputs primed through feedback connections
// are not carried over.
func (g *Graph[S]) Clone() *Graph[S] {
	c := &Graph[S]{
		blocks:   make([]Block[S], len(g.blocks)),
		edges:    make([][]Node, len(g.edges)),
		order:    slices.Clone(g.order),
		feedback: slices.Clone(g.feedback),
	}

	for i := range g.blocks {
		c.blocks[i] = g.blocks[i].Clone()
		c.edges[i] = slices.Clone(g.edges[i])
	}

	return c
}
