// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package dlist implements a doubly linked list of string payloads whose
// nodes are allocated by the caller and handed to the list by reference.
//
// The list keeps a reference to its front node (the one without a previous
// node) and to its back node (the one without a next node). Every insertion
// first checks, by identity, that the node is not already a member, which
// keeps the chain acyclic. Failed operations leave the list untouched and
// return one of the sentinel errors of this package, wrapped with context.
//
// Each operation narrates its outcome (and every membership lookup) through
// the list's narrator. Without one, lookups go to [log.Trace], successes to
// [log.Debug] and failures to [log.Warn].
//
// A [List] is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call, traversals included, with a single lock.
package dlist

import (
	"github.com/pkg/errors"

	"github.com/DataDog/dlist-internal-go/log"
)

type (
	// List is a doubly linked list of [Node]. The zero value is an empty list
	// that narrates through the log package.
	List struct {
		front *Node // First node; its prev is always nil
		back  *Node // Last node; its next is always nil
		len   int   // Number of nodes between front and back, inclusive

		narrate func(string, ...any) // Receives one line per outcome
		stats   stats                // Operation counters
	}

	// Option customizes a [List] created by [New].
	Option func(*List)
)

// New creates a new, empty [List].
func New(opts ...Option) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithNarrator sends the outcome of every operation to the provided function
// instead of the log package. A nil function silences narration.
func WithNarrator(narrate func(format string, args ...any)) Option {
	return func(l *List) {
		if narrate == nil {
			narrate = func(string, ...any) {}
		}
		l.narrate = narrate
	}
}

// Len returns the number of nodes in the list.
func (l *List) Len() int {
	return l.len
}

// Front returns the first node of the list, or nil if the list is empty.
func (l *List) Front() *Node {
	return l.front
}

// Back returns the last node of the list, or nil if the list is empty.
func (l *List) Back() *Node {
	return l.back
}

// Contains reports whether node is a member of the list. Membership is
// decided by identity: a different node carrying the same payload is not a
// member. This walks the list from the front, so it runs in O(n).
func (l *List) Contains(node *Node) bool {
	l.stats.lookups.Inc()

	for curr := l.front; curr != nil; curr = curr.next {
		if curr == node {
			l.say(log.Trace, "Node exists in list.")
			return true
		}
	}

	l.say(log.Trace, "Node does not exist in list.")
	return false
}

// InsertIntoEmpty makes node the only member of the list. It fails with
// [ErrListNotEmpty] if the list already holds a node, and with
// [ErrForeignMember] if node belongs to another list. This is the only
// operation allowed to insert into an empty list.
func (l *List) InsertIntoEmpty(node *Node) error {
	if node == nil {
		return l.fail(ErrNilNode, "insert at beginning of list")
	}

	if l.front != nil || l.back != nil {
		return l.fail(ErrListNotEmpty, "insert '%s' at beginning of list", node.value)
	}

	if node.list != nil && node.list != l {
		return l.fail(ErrForeignMember, "insert '%s' at beginning of list", node.value)
	}

	node.list = l
	node.prev = nil
	node.next = nil
	l.front = node
	l.back = node
	l.len = 1

	l.succeed("inserted '%s' at beginning of list", node.value)
	return nil
}

// InsertAtBack appends node after the current back node. It fails with
// [ErrDuplicateMember] if node is already a member, with [ErrForeignMember]
// if it belongs to another list, and with [ErrListEmpty] if the list has no
// node yet.
func (l *List) InsertAtBack(node *Node) error {
	if node == nil {
		return l.fail(ErrNilNode, "insert at end of list")
	}

	if l.Contains(node) {
		return l.fail(ErrDuplicateMember, "insert '%s' at end of list", node.value)
	}

	if node.list != nil && node.list != l {
		return l.fail(ErrForeignMember, "insert '%s' at end of list", node.value)
	}

	back := l.back
	if back == nil {
		return l.fail(ErrListEmpty, "insert '%s' at end of list", node.value)
	}

	node.list = l
	back.next = node
	node.prev = back
	node.next = nil
	l.back = node
	l.len++

	l.succeed("inserted '%s' at end of list", node.value)
	return nil
}

// InsertAtFront prepends node before the current front node. It fails with
// [ErrDuplicateMember] if node is already a member, with [ErrForeignMember]
// if it belongs to another list, and with [ErrListEmpty] if the list has no
// node yet.
func (l *List) InsertAtFront(node *Node) error {
	if node == nil {
		return l.fail(ErrNilNode, "insert at start of list")
	}

	if l.Contains(node) {
		return l.fail(ErrDuplicateMember, "insert '%s' at start of list", node.value)
	}

	if node.list != nil && node.list != l {
		return l.fail(ErrForeignMember, "insert '%s' at start of list", node.value)
	}

	front := l.front
	if front == nil {
		return l.fail(ErrListEmpty, "insert '%s' at start of list", node.value)
	}

	node.list = l
	front.prev = node
	node.next = front
	node.prev = nil
	l.front = node
	l.len++

	l.succeed("inserted '%s' at start of list", node.value)
	return nil
}

// InsertAfter splices node between mark and the node that follows it. If
// mark is the back node, node becomes the new back node. It fails with
// [ErrNotFound] if mark is not a member, with [ErrDuplicateMember] if node
// already is, and with [ErrForeignMember] if node belongs to another list.
func (l *List) InsertAfter(mark, node *Node) error {
	if mark == nil || node == nil {
		return l.fail(ErrNilNode, "insert after node")
	}

	if !l.Contains(mark) {
		return l.fail(ErrNotFound, "insert '%s' after '%s'", node.value, mark.value)
	}

	if l.Contains(node) {
		return l.fail(ErrDuplicateMember, "insert '%s' after '%s'", node.value, mark.value)
	}

	if node.list != nil && node.list != l {
		return l.fail(ErrForeignMember, "insert '%s' after '%s'", node.value, mark.value)
	}

	next := mark.next
	node.list = l
	node.prev = mark
	node.next = next
	mark.next = node
	if next == nil {
		l.back = node
	} else {
		next.prev = node
	}
	l.len++

	l.succeed("inserted '%s' after '%s'", node.value, mark.value)
	return nil
}

// InsertBefore splices node between mark and the node that precedes it. If
// mark is the front node, node becomes the new front node. It fails with
// [ErrNotFound] if mark is not a member, with [ErrDuplicateMember] if node
// already is, and with [ErrForeignMember] if node belongs to another list.
func (l *List) InsertBefore(mark, node *Node) error {
	if mark == nil || node == nil {
		return l.fail(ErrNilNode, "insert before node")
	}

	if !l.Contains(mark) {
		return l.fail(ErrNotFound, "insert '%s' before '%s'", node.value, mark.value)
	}

	if l.Contains(node) {
		return l.fail(ErrDuplicateMember, "insert '%s' before '%s'", node.value, mark.value)
	}

	if node.list != nil && node.list != l {
		return l.fail(ErrForeignMember, "insert '%s' before '%s'", node.value, mark.value)
	}

	prev := mark.prev
	node.list = l
	node.next = mark
	node.prev = prev
	mark.prev = node
	if prev == nil {
		l.front = node
	} else {
		prev.next = node
	}
	l.len++

	l.succeed("inserted '%s' before '%s'", node.value, mark.value)
	return nil
}

// Delete removes node from the list and releases it: its links are cleared
// and its payload is dropped, so that [Node.Value] returns an empty string
// afterwards. It fails with [ErrNotFound] if node is not a member, in which
// case node is left untouched.
func (l *List) Delete(node *Node) error {
	if node == nil {
		return l.fail(ErrNilNode, "delete node")
	}

	if !l.Contains(node) {
		return l.fail(ErrNotFound, "delete '%s'", node.value)
	}

	prev := node.prev
	next := node.next

	if prev == nil {
		l.front = next
	} else {
		prev.next = next
	}

	if next == nil {
		l.back = prev
	} else {
		next.prev = prev
	}
	l.len--

	value := node.value
	node.release()
	l.stats.deletes.Inc()

	l.say(log.Debug, "Successfully deleted '%s' from list.", value)
	return nil
}

// Stats returns a snapshot of the operation counters of this list.
func (l *List) Stats() Stats {
	return l.stats.snapshot()
}

// succeed records and narrates a successful insertion.
func (l *List) succeed(format string, args ...any) {
	l.stats.inserts.Inc()
	l.say(log.Debug, "Successfully "+format+".", args...)
}

// fail records and narrates a failed operation, and returns cause wrapped
// with a description of that operation.
func (l *List) fail(cause error, format string, args ...any) error {
	l.stats.failures.Inc()
	err := errors.Wrapf(cause, format, args...)
	l.say(log.Warn, "Failed to %v.", err)
	return err
}

// say narrates through the list's narrator, or through the provided log level
// when none was set.
func (l *List) say(level func(string, ...any), format string, args ...any) {
	if l.narrate == nil {
		level(format, args...)
		return
	}
	l.narrate(format, args...)
}
