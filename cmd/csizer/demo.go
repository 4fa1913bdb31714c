package main

import (
	"context"
	"io"

	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/memory"
	"github.com/wippyai/csizer/render"
	"github.com/wippyai/csizer/typespec"
)

// demoBase is where the demo aggregate lives in linear memory.
const demoBase = 0x1000

var (
	// struct { char c; char a; int d; double e; }
	demoLayout = typespec.MustParse("ccid")
	demoValues = []any{'A', 'B', 24, 32.4}
	// the view printed for every argument
	demoView = typespec.MustParse("ci")
)

type demoMemory struct {
	mem *memory.LinearMemory
	r   *render.Renderer
}

func newDemoMemory(ctx context.Context, eng *layout.Engine) (*demoMemory, error) {
	lm, err := memory.NewLinearMemory(ctx, 1)
	if err != nil {
		return nil, err
	}
	if err := memory.NewEncoder(lm, eng).Put(demoLayout, demoBase, demoValues...); err != nil {
		lm.Close(ctx)
		return nil, err
	}
	return &demoMemory{
		mem: lm,
		r:   render.New(lm, render.WithEngine(eng)),
	}, nil
}

func (d *demoMemory) Print(w io.Writer) error {
	return d.r.Print(w, demoView, demoBase)
}

func (d *demoMemory) Close(ctx context.Context) error {
	return d.mem.Close(ctx)
}
