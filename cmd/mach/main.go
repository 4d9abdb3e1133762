package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/machgen/mach/codegen/frame"
	"github.com/machgen/mach/codegen/llt"
	"github.com/machgen/mach/codegen/quant"
)

func main() {
	typesCmd := &cli.Command{
		Name:   "types",
		Action: typesAct,
		Args:   cli.Args{},
	}

	frameCmd := &cli.Command{
		Name:   "frame",
		Action: frameAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "mach",
		Description: "mach is a tool for inspecting machine level types",
		Commands: []*cli.Command{
			typesCmd,
			frameCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func typesAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		t, err := ParseType(a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		tlog.SpanFromContext(ctx).Printw("type", "descr", t, "size", t.SizeInBits())

		fmt.Printf("%v\tsize %v bits\n", t, t.SizeInBits())
	}

	return nil
}

func frameAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	var l frame.Layout

	ts := make([]llt.Type, 0, len(c.Args))

	for _, a := range c.Args {
		t, err := ParseType(a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		ts = append(ts, t)
		l.Add(t)
	}

	l.Place(ctx)

	for id, t := range ts {
		fmt.Printf("%v\t%v\n", t, fmtOffset(l.Offset(id)))
	}

	fmt.Printf("total\t%v\n", fmtOffset(l.TotalSize()))

	return nil
}

func fmtOffset(o quant.Offset) string {
	var b strings.Builder

	add := func(pref string, x int64) {
		if x == 0 {
			return
		}

		if b.Len() != 0 {
			b.WriteByte(' ')
		}

		fmt.Fprintf(&b, "%s%d", pref, x)
	}

	add("", o.Fixed())
	add("v:", o.ScalableV())
	add("m:", o.ScalableM())
	add("n:", o.ScalableN())
	add("mn:", o.ScalableMN())

	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
