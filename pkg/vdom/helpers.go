package vdom

import (
	"fmt"
	"strconv"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a node whose content is written without escaping.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. It takes the same
// child arguments as an element.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	for i, child := range children {
		node.appendChild(child, strconv.Itoa(i))
	}
	return node
}

// If returns node when condition holds, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When calls fn only when condition holds.
func When(condition bool, fn func() *VNode) *VNode {
	if !condition {
		return nil
	}
	return fn()
}

// Range renders one node per item, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Key sets the reconciliation key of an element.
func Key(key any) Attr {
	return attr("key", fmt.Sprint(key))
}
