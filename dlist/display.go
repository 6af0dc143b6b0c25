// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dlist

import (
	"iter"
	"strings"
)

// DefaultSeparator is used by [List.String] between rendered payloads.
const DefaultSeparator = ", "

// All returns an iterator over the payloads of the list, from front to back.
// Iterating an empty list yields nothing.
func (l *List) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for node := range l.Nodes() {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the payloads of the list, from back to
// front.
func (l *List) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		for node := l.back; node != nil; {
			prev := node.prev
			if !yield(node.value) {
				return
			}
			node = prev
		}
	}
}

// Nodes returns an iterator over the nodes of the list, from front to back.
// The node being visited may be deleted from within the loop.
func (l *List) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := l.front; node != nil; {
			next := node.next
			if !yield(node) {
				return
			}
			node = next
		}
	}
}

// Render formats the payloads of the list from front to back, each one
// single-quoted and joined by sep, between square brackets.
func (l *List) Render(sep string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for value := range l.All() {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteByte('\'')
		sb.WriteString(value)
		sb.WriteByte('\'')
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the list using [DefaultSeparator], e.g. ['a', 'b'].
func (l *List) String() string {
	return l.Render(DefaultSeparator)
}
