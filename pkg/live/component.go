package live

import (
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// instance is a mounted component. Its owner scopes the hooks of its
// renders, so two controls never share state and a control's listeners are
// disposed with it.
type instance struct {
	name     string
	owner    *vango.Owner
	children map[string]*instance
	mounted  bool
}

func newInstance(name string, owner *vango.Owner) *instance {
	return &instance{
		name:     name,
		owner:    owner,
		children: make(map[string]*instance),
	}
}

// Mount implements vdom.Mounter. The instance at path is reused while a
// component of the same name renders there; otherwise it is replaced.
func (c *instance) Mount(path string, comp vdom.Component) *vdom.VNode {
	name := vdom.ComponentName(comp)
	child := c.children[path]
	if child != nil && child.name != name {
		child.owner.Dispose()
		child = nil
	}
	if child == nil {
		child = newInstance(name, vango.NewOwner(c.owner))
		c.children[path] = child
	}
	child.mounted = true

	var out *vdom.VNode
	vango.WithOwner(child.owner, func() {
		child.owner.StartRender()
		defer child.owner.EndRender()
		out = comp.Render()
	})
	return child.expand(out)
}

// expand mounts the components of tree, rendered by c, and disposes the
// children of c that tree no longer contains.
func (c *instance) expand(tree *vdom.VNode) *vdom.VNode {
	for _, child := range c.children {
		child.mounted = false
	}
	tree = vdom.Expand(tree, c)
	for path, child := range c.children {
		if !child.mounted {
			child.owner.Dispose()
			delete(c.children, path)
		}
	}
	return tree
}

// count returns the number of instances below c.
func (c *instance) count() int {
	n := len(c.children)
	for _, child := range c.children {
		n += child.count()
	}
	return n
}
