// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/bae/sample"
)

// Complex is a Sound backed by a signal flow graph.
type Complex[S sample.Frame[S]] struct {
	controls[S]
	graph *Graph[S]
}

// NewComplex returns a sound whose graph holds only its input and output
// gains.
func NewComplex[S sample.Frame[S]](inGain, outGain float64) *Complex[S] {
	return &Complex[S]{
		controls: newControls[S](),
		graph:    NewGraph[S](inGain, outGain),
	}
}

// Process runs the graph once with x as the external input. A paused sound
// returns silence without advancing; a muted one advances and returns
// silence.
func (c *Complex[S]) Process(x S) S {
	var zero S
	if c.paused {
		return zero
	}

	y := c.graph.Process(x)
	if c.muted {
		return zero
	}

	return y
}

// Register adds the sound to r, leaving any previous registrar first.
func (c *Complex[S]) Register(r Registrar[S]) { c.register(c, r) }

// AddBlock moves b into the graph. See Graph.AddBlock.
func (c *Complex[S]) AddBlock(b Block[S]) Node { return c.graph.AddBlock(b) }

// AddConnection connects two nodes and logs the feedback edges that result.
func (c *Complex[S]) AddConnection(from, to Node) error {
	if err := c.graph.AddConnection(from, to); err != nil {
		return err
	}

	c.logFeedback()

	return nil
}

// RemoveConnection disconnects two nodes. See Graph.RemoveConnection.
func (c *Complex[S]) RemoveConnection(from, to Node) error {
	if err := c.graph.RemoveConnection(from, to); err != nil {
		return err
	}

	c.logFeedback()

	return nil
}

func (c *Complex[S]) logFeedback() {
	if fb := c.graph.feedback; len(fb) > 0 {
		c.logger.WithField("edges", fb).Debug("graph has feedback connections")
	}
}

// InputNode is the handle of the input gain.
func (c *Complex[S]) InputNode() Node { return c.graph.InputNode() }

// OutputNode is the handle of the output gain.
func (c *Complex[S]) OutputNode() Node { return c.graph.OutputNode() }

// Order returns the graph's process order.
func (c *Complex[S]) Order() []Node { return c.graph.Order() }

// Modify runs fn with the Block behind n. See Graph.Modify.
func (c *Complex[S]) Modify(n Node, fn func(b *Block[S])) error {
	return c.graph.Modify(n, fn)
}

// SetInputGain scales the external input.
func (c *Complex[S]) SetInputGain(v float64) { c.graph.SetInputGain(v) }

// InputGain returns the input scale.
func (c *Complex[S]) InputGain() float64 { return c.graph.InputGain() }

// SetOutputGain scales the graph output.
func (c *Complex[S]) SetOutputGain(v float64) { c.graph.SetOutputGain(v) }

// OutputGain returns the output scale.
func (c *Complex[S]) OutputGain() float64 { return c.graph.OutputGain() }

// Graph gives access to the underlying graph for inspection.
func (c *Complex[S]) Graph() *Graph[S] { return c.graph }

// Clone deep copies the graph. The copy keeps the pause and mute flags but
// is not registered.
func (c *Complex[S]) Clone() *Complex[S] {
	return &Complex[S]{
		controls: c.detached(),
		graph:    c.graph.Clone(),
	}
}
