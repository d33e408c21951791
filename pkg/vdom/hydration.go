package vdom

import (
	"strconv"
	"sync"
)

// HIDGenerator generates hydration IDs ("h1", "h2", ...).
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID.
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return "h" + strconv.FormatUint(uint64(g.counter), 10)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs assigns HIDs in document order to interactive elements and to
// elements carrying a NodeRef.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement && (n.IsInteractive() || n.Ref() != nil) {
			n.HID = gen.Next()
		}
		return true
	})
}

// AssignAllHIDs assigns HIDs to every element in document order, so a tree
// with the same shape always gets the same IDs.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement {
			n.HID = gen.Next()
		}
		return true
	})
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	Walk(node, func(n *VNode) bool {
		if n.HID != "" {
			result[n.HID] = n
		}
		return true
	})
	return result
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits node and its descendants in document order until fn returns
// false. Component nodes are visited but not expanded.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in document order for which pred is true.
func Find(node *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node in document order for which pred is true.
func FindAll(node *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByClass returns the first element carrying class.
func FindByClass(node *VNode, class string) *VNode {
	return Find(node, func(n *VNode) bool { return n.HasClass(class) })
}

// Mounter renders the components of a tree. path locates the component
// below the nearest enclosing component, by key or argument position, so a
// conditional sibling appearing before it does not change it.
type Mounter interface {
	Mount(path string, c Component) *VNode
}

// Expand replaces every component node in the tree rooted at node with the
// output m renders for it and returns the expanded tree. m is responsible
// for expanding the output of the components it mounts.
func Expand(node *VNode, m Mounter) *VNode {
	if node == nil {
		return nil
	}
	if node.Kind == KindComponent && node.Comp != nil {
		return Fragment(m.Mount("/"+node.position(0), node.Comp))
	}
	expand(node, "", m)
	return node
}

func expand(node *VNode, path string, m Mounter) {
	for i, child := range node.Children {
		if child == nil {
			continue
		}
		p := path + "/" + child.position(i)
		if child.Kind == KindComponent && child.Comp != nil {
			node.Children[i] = Fragment(m.Mount(p, child.Comp))
			continue
		}
		expand(child, p, m)
	}
}
