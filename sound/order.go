// SPDX-License-Identifier: EPL-2.0

package sound

// reorder recomputes the process order with Kahn's algorithm. Sources are
// queued in handle order after the input gain. When only nodes on cycles
// remain, the one with the fewest unresolved inputs (lowest handle on ties)
// is released next, which turns its unresolved inputs into feedback. The
// output gain is always last.
func (g *Graph[S]) reorder() {
	n := len(g.blocks)

	indeg := make([]int, n)
	for _, succ := range g.edges {
		for _, to := range succ {
			indeg[to]++
		}
	}

	placed := make([]bool, n)
	placed[outputNode] = true

	order := make([]Node, 0, n)
	queue := []Node{inputNode}
	placed[inputNode] = true

	for i := range n {
		if !placed[i] && indeg[i] == 0 {
			queue = append(queue, Node(i))
			placed[i] = true
		}
	}

	for len(order) < n-1 {
		if len(queue) == 0 {
			queue = append(queue, g.leastBlocked(indeg, placed))
			placed[queue[0]] = true
		}

		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, to := range g.edges[cur] {
			indeg[to]--
			if !placed[to] && indeg[to] == 0 {
				queue = append(queue, to)
				placed[to] = true
			}
		}
	}

	g.order = append(order, outputNode)
	g.findFeedback()
}

// leastBlocked picks the unplaced node with the fewest remaining inputs.
func (g *Graph[S]) leastBlocked(indeg []int, placed []bool) Node {
	best := Node(-1)
	for i, d := range indeg {
		if placed[i] {
			continue
		}
		if best < 0 || d < indeg[best] {
			best = Node(i)
		}
	}

	return best
}

func (g *Graph[S]) findFeedback() {
	pos := make([]int, len(g.order))
	for i, n := range g.order {
		pos[n] = i
	}

	g.feedback = g.feedback[:0]
	for from, succ := range g.edges {
		for _, to := range succ {
			if pos[to] <= pos[from] {
				g.feedback = append(g.feedback, Edge{From: Node(from), To: to})
			}
		}
	}
}
