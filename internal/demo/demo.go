// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package demo replays a fixed sequence of list operations, narrating each
// outcome, so that the behaviour of [dlist.List] can be observed end to end.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/DataDog/dlist-internal-go/dlist"
	"github.com/DataDog/dlist-internal-go/internal/config"
	"github.com/DataDog/dlist-internal-go/log"
)

type (
	// step is one call in the demonstration sequence.
	step struct {
		run     func() error
		outcome error // nil if the call is expected to succeed
	}

	// writer remembers the first write error so that the sequence does not
	// have to check every line it prints.
	writer struct {
		w   io.Writer
		err error
	}
)

// Run builds a fresh list and replays the demonstration sequence against it,
// writing narration and rendered lists to w. It returns an error if an
// operation does not end as expected or if writing to w fails.
func Run(w io.Writer, cfg config.Config) (*dlist.List, error) {
	out := &writer{w: w}

	narrator := out.println
	if !cfg.DiagnosticsEnabled {
		narrator = nil
	}
	list := dlist.New(dlist.WithNarrator(narrator))

	hello := dlist.NewNode("Hello")
	world := dlist.NewNode("World")
	bangs := dlist.NewNode("!!!!!")
	marks := dlist.NewNode("?????")
	dots := dlist.NewNode(".....")

	steps := []step{
		{run: func() error { return list.InsertIntoEmpty(hello) }},
		{run: func() error { return list.InsertAtFront(world) }},
		{run: func() error { return list.InsertAtBack(bangs) }},
		{run: func() error { return list.InsertAtFront(hello) }, outcome: dlist.ErrDuplicateMember},
		{run: func() error { return list.InsertAtBack(bangs) }, outcome: dlist.ErrDuplicateMember},
		{run: func() error { return list.InsertAfter(bangs, marks) }},
		{run: func() error { return list.InsertBefore(hello, dots) }},
	}
	if err := replay(steps); err != nil {
		return list, err
	}
	out.println("%s", list.Render(cfg.DisplaySeparator))

	if err := replay([]step{{run: func() error { return list.Delete(dots) }}}); err != nil {
		return list, err
	}
	out.println("%s", list.Render(cfg.DisplaySeparator))

	stats := list.Stats()
	log.Debug("dlist: demo completed with %d inserts, %d deletes, %d failures and %d lookups",
		stats.Inserts, stats.Deletes, stats.Failures, stats.Lookups)

	if out.err != nil {
		return list, errors.Wrap(out.err, "demo: writing output")
	}
	return list, nil
}

func replay(steps []step) error {
	for i, s := range steps {
		err := s.run()
		switch {
		case s.outcome == nil && err != nil:
			return errors.Wrapf(err, "demo: step %d", i+1)
		case s.outcome != nil && !errors.Is(err, s.outcome):
			return errors.Errorf("demo: step %d: expected %v, got %v", i+1, s.outcome, err)
		}
	}
	return nil
}

func (w *writer) println(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format+"\n", args...)
}
