package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementContains(t *testing.T) {
	root := &Element{hid: "h1"}
	child := &Element{hid: "h2", parent: root}
	leaf := &Element{hid: "h3", parent: child}
	other := &Element{hid: "h4", parent: root}

	assert.True(t, root.Contains(leaf))
	assert.True(t, child.Contains(leaf))
	assert.True(t, leaf.Contains(leaf))
	assert.False(t, child.Contains(other))
	assert.False(t, leaf.Contains(child))
	assert.False(t, root.Contains(nil))
}
