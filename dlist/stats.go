// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dlist

import "go.uber.org/atomic"

type (
	// Stats is a point-in-time snapshot of the counters of a [List].
	Stats struct {
		Inserts  uint64 // Successful insertions, all variants included
		Deletes  uint64 // Successful deletions
		Failures uint64 // Operations that returned an error
		Lookups  uint64 // Membership lookups, including those made by other operations
	}

	// stats holds the live counters. They may be read from any goroutine.
	stats struct {
		inserts  atomic.Uint64
		deletes  atomic.Uint64
		failures atomic.Uint64
		lookups  atomic.Uint64
	}
)

func (s *stats) snapshot() Stats {
	return Stats{
		Inserts:  s.inserts.Load(),
		Deletes:  s.deletes.Load(),
		Failures: s.failures.Load(),
		Lookups:  s.lookups.Load(),
	}
}
