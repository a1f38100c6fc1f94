package protocol

// SumVersions adds the version of every packet in the tree. The traversal is
// breadth-first and iterative, so it does not grow the call stack.
func SumVersions(root *Packet) uint64 {
	if root == nil {
		return 0
	}
	var sum uint64
	queue := []*Packet{root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		sum += uint64(p.Version)
		for _, child := range p.Children {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
	return sum
}

// Walk visits the tree depth-first in pre-order, children in wire order.
// Returning a non-nil error from fn stops the walk and returns that error.
func Walk(root *Packet, fn func(p *Packet, depth int) error) error {
	if root == nil {
		return nil
	}
	type frame struct {
		p     *Packet
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(top.p, top.depth); err != nil {
			return err
		}
		for i := len(top.p.Children) - 1; i >= 0; i-- {
			if child := top.p.Children[i]; child != nil {
				stack = append(stack, frame{child, top.depth + 1})
			}
		}
	}
	return nil
}

// Count returns the number of packets in the tree.
func Count(root *Packet) int {
	n := 0
	_ = Walk(root, func(*Packet, int) error {
		n++
		return nil
	})
	return n
}

// Depth returns the number of levels in the tree; a lone literal is 1.
func Depth(root *Packet) int {
	deepest := 0
	_ = Walk(root, func(_ *Packet, depth int) error {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return nil
	})
	return deepest
}
