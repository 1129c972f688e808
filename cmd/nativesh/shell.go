package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/natives"
	"github.com/vilterp/balnative/pkg/tablestore"
)

type shell struct {
	registry *natives.Registry
	store    *tablestore.Store
	out      io.Writer
}

func (s *shell) handleLine(line string) {
	line = strings.Trim(line, "\t ")
	switch {
	case line == "":
		return
	case line == `\h`:
		fmt.Fprintln(s.out, `\h	help`)
		fmt.Fprintln(s.out, `\l	list natives`)
		fmt.Fprintln(s.out, `\d <pkg:name>	describe a native`)
		fmt.Fprintln(s.out, `\t	list tables`)
		fmt.Fprintln(s.out, `\m	dump invocation metrics`)
		fmt.Fprintln(s.out, `pkg:name(arg, ...)	invoke a native`)
	case line == `\l`:
		for _, n := range s.registry.Natives() {
			fmt.Fprintln(s.out, n.Descriptor().Format().String())
		}
	case strings.HasPrefix(line, `\d`):
		s.describe(strings.TrimSpace(strings.TrimPrefix(line, `\d`)))
	case line == `\t`:
		s.listTables()
	case line == `\m`:
		s.dumpMetrics()
	default:
		s.invoke(line)
	}
}

func (s *shell) describe(name string) {
	n, ok := s.registry.LookupName(name)
	if !ok {
		fmt.Fprintln(s.out, "no such native:", name)
		return
	}
	fmt.Fprintln(s.out, n.Descriptor().Describe().String())
}

func (s *shell) listTables() {
	if s.store == nil {
		fmt.Fprintln(s.out, "no data file")
		return
	}
	for _, name := range s.store.Tables() {
		fmt.Fprintln(s.out, name)
	}
}

func (s *shell) dumpMetrics() {
	families, err := s.registry.Gatherer().Gather()
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(s.out, family); err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return
		}
	}
}

func (s *shell) invoke(line string) {
	c, err := parseCall(line)
	if err != nil {
		fmt.Fprintln(s.out, "parse error:", err)
		return
	}
	n, ok := s.registry.Lookup(c.Package, c.Name)
	if !ok {
		fmt.Fprintln(s.out, "no such native:", natives.FullName(c.Package, c.Name))
		return
	}

	args := make([]lang.Value, len(c.Args))
	for idx, lit := range c.Args {
		val, cursor, err := lit.evaluate(s.store)
		if err != nil {
			fmt.Fprintf(s.out, "argument %d: %v\n", idx, err)
			return
		}
		if cursor != nil {
			defer cursor.Close()
		}
		args[idx] = val
	}

	ctx := natives.NewContext(context.Background(), args, len(n.Descriptor().Returns))
	rets, err := s.registry.Invoke(ctx, n)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	for _, ret := range rets {
		fmt.Fprintln(s.out, ret.Format().String())
	}
}
