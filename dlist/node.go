// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dlist

// Node is an element of a [List]. It owns a string payload and links to its
// neighbours: prev points toward the front of the list, next toward the back.
// Nodes are created detached with [NewNode] and handed to a [List] by
// reference; membership is decided by identity, never by payload.
type Node struct {
	list  *List // Owning list, nil while detached
	prev  *Node
	next  *Node
	value string
}

// NewNode creates a detached [Node] holding the provided payload.
func NewNode(value string) *Node {
	return &Node{value: value}
}

// Value returns the payload of this node. It is empty once the node has been
// deleted from its list.
func (n *Node) Value() string {
	return n.value
}

// Next returns the neighbour toward the back of the list, or nil if n is the
// back node or is detached.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the neighbour toward the front of the list, or nil if n is the
// front node or is detached.
func (n *Node) Prev() *Node {
	return n.prev
}

// release clears the owner, the links and the payload of a node that was just removed
// from its list.
func (n *Node) release() {
	n.list = nil
	n.prev = nil
	n.next = nil
	n.value = ""
}
