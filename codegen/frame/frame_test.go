package frame

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/machgen/mach/codegen/llt"
	"github.com/machgen/mach/codegen/quant"
)

func TestPlaceFixed(t *testing.T) {
	ctx := context.Background()

	var l Layout

	a := l.AddObject(quant.SizeFixed(1), 1)
	b := l.AddObject(quant.SizeFixed(16), 8)
	c := l.AddObject(quant.SizeFixed(4), 4)

	l.Place(ctx)

	// largest alignment first: b at 0, c at 16, a at 20
	assert.Equal(t, quant.OffsetFixed(0), l.Offset(b))
	assert.Equal(t, quant.OffsetFixed(16), l.Offset(c))
	assert.Equal(t, quant.OffsetFixed(20), l.Offset(a))

	assert.Equal(t, quant.OffsetFixed(21), l.TotalSize())
}

func TestPlaceScalableClasses(t *testing.T) {
	ctx := context.Background()

	var l Layout

	fixed := l.AddObject(quant.SizeFixed(8), 8)
	v0 := l.AddObject(quant.SizeScalable(16), 16)
	v1 := l.AddObject(quant.SizeScalable(16), 16)
	m := l.AddObject(quant.SizeScalableM(32), 8)
	mn := l.AddObject(quant.SizeScalableMN(64), 8)

	l.Place(ctx)

	// every class starts at zero in its own region
	assert.Equal(t, quant.OffsetFixed(0), l.Offset(fixed))
	assert.Equal(t, quant.OffsetScalable(0), l.Offset(v0))
	assert.Equal(t, quant.OffsetScalable(16), l.Offset(v1))
	assert.Equal(t, quant.OffsetScalableM(0), l.Offset(m))
	assert.Equal(t, quant.OffsetScalableMN(0), l.Offset(mn))

	total := l.TotalSize()

	assert.Equal(t, int64(8), total.Fixed())
	assert.Equal(t, int64(32), total.ScalableV())
	assert.Equal(t, int64(32), total.ScalableM())
	assert.Equal(t, int64(0), total.ScalableN())
	assert.Equal(t, int64(64), total.ScalableMN())
}

func TestAddType(t *testing.T) {
	ctx := context.Background()

	var l Layout

	v := l.Add(llt.Vector(quant.CountFixed(4), 32)) // 16 bytes
	s := l.Add(llt.Scalar(13))                      // 2 bytes, aligned 2

	sv := l.Add(llt.Vector(quant.CountScalable(2), 64)) // vscale x 16 bytes

	l.Place(ctx)

	assert.Equal(t, quant.OffsetFixed(0), l.Offset(v))
	assert.Equal(t, quant.OffsetFixed(16), l.Offset(s))
	assert.Equal(t, quant.OffsetScalable(0), l.Offset(sv))

	assert.Equal(t, int64(18), l.TotalSize().Fixed())
	assert.Equal(t, int64(16), l.TotalSize().ScalableV())
}

func TestContract(t *testing.T) {
	var l Layout

	assert.Panics(t, func() { l.AddObject(quant.SizeFixed(4), 3) })
	assert.Panics(t, func() { l.AddObject(quant.SizeFixed(4), 0) })
	assert.Panics(t, func() { l.Offset(0) })

	l.AddObject(quant.SizeFixed(4), 4)
	l.Place(context.Background())

	assert.Panics(t, func() { l.Place(context.Background()) })
	assert.Panics(t, func() { l.AddObject(quant.SizeFixed(4), 4) })
}
