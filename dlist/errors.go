// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dlist

import "github.com/pkg/errors"

var (
	// ErrListNotEmpty is returned by [List.InsertIntoEmpty] when the list
	// already holds at least one node.
	ErrListNotEmpty = errors.New("list not empty")
	// ErrListEmpty is returned by [List.InsertAtFront] and [List.InsertAtBack]
	// when the list holds no node yet.
	ErrListEmpty = errors.New("list is empty")
	// ErrDuplicateMember is returned when the node being inserted already
	// belongs to the list.
	ErrDuplicateMember = errors.New("node already in list")
	// ErrForeignMember is returned when the node being inserted is still a
	// member of another list. It must be deleted from that list first.
	ErrForeignMember = errors.New("node belongs to another list")
	// ErrNotFound is returned when an anchor or delete target is not a member
	// of the list.
	ErrNotFound = errors.New("node does not exist in list")
	// ErrNilNode is returned when a nil node is passed to a mutating operation.
	ErrNilNode = errors.New("nil node")
)
