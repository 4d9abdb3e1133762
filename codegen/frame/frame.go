/*
Package frame accumulates stack frame layout contributions.

Objects of fixed size and of every scalable class land in separate frame
regions, so each object offset has exactly one non-zero component and the
frame total is the component-wise sum. Placement is largest alignment
first to keep padding down.
*/
package frame

import (
	"context"
	"math/bits"

	"nikand.dev/go/heap"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/machgen/mach/codegen/llt"
	"github.com/machgen/mach/codegen/quant"
)

type (
	Object struct {
		ID    int
		Size  quant.Size // bytes
		Align int64      // bytes, power of two
	}

	Layout struct {
		objs []Object
		off  []quant.Offset

		placed bool

		// region cursors, bytes
		fixed int64
		v     int64
		m     int64
		n     int64
		mn    int64
	}

)

// Add queues a frame object for the given type and returns its id.
// Alignment is the element size rounded up to a power of two.
func (l *Layout) Add(t llt.Type) int {
	size := quant.AlignTo(t.SizeInBits(), 8).DivideCoefficient(8)

	align := int64(pow2Ceil(uint64(t.ScalarSizeInBits())) / 8)
	if align == 0 {
		align = 1
	}

	return l.AddObject(size, align)
}

// AddObject queues a frame object of an explicit byte size and alignment.
func (l *Layout) AddObject(size quant.Size, align int64) int {
	if align <= 0 || align&(align-1) != 0 {
		panic(align)
	}

	if l.placed {
		panic("layout already placed")
	}

	id := len(l.objs)
	l.objs = append(l.objs, Object{ID: id, Size: size, Align: align})
	l.off = append(l.off, quant.Offset{})

	return id
}

// Place assigns every queued object an offset inside its region.
func (l *Layout) Place(ctx context.Context) {
	tr := tlog.SpanFromContext(ctx)

	if l.placed {
		panic("layout already placed")
	}

	l.placed = true

	q := heap.Heap[Object]{Less: alignLess}

	for _, obj := range l.objs {
		q.Push(obj)
	}

	for q.Len() != 0 {
		obj := q.Pop()

		off := l.alloc(obj)
		l.off[obj.ID] = off

		tr.V("frame_alloc").Printw("object placed", "id", obj.ID, "size", obj.Size, "align", obj.Align, "off", off, "from", loc.Caller(1))
	}
}

func (l *Layout) alloc(obj Object) quant.Offset {
	cur := l.cursor(obj.Size.Scale())

	*cur = alignUp(*cur, obj.Align)
	off := *cur
	*cur += int64(obj.Size.Min())

	switch obj.Size.Scale() {
	case quant.None:
		return quant.OffsetFixed(off)
	case quant.V:
		return quant.OffsetScalable(off)
	case quant.M:
		return quant.OffsetScalableM(off)
	case quant.N:
		return quant.OffsetScalableN(off)
	case quant.MN:
		return quant.OffsetScalableMN(off)
	default:
		panic(obj.Size.Scale())
	}
}

func (l *Layout) cursor(s quant.Scale) *int64 {
	switch s {
	case quant.None:
		return &l.fixed
	case quant.V:
		return &l.v
	case quant.M:
		return &l.m
	case quant.N:
		return &l.n
	case quant.MN:
		return &l.mn
	default:
		panic(s)
	}
}

// Offset of a placed object.
func (l *Layout) Offset(id int) quant.Offset {
	if !l.placed {
		panic("layout not placed yet")
	}

	return l.off[id]
}

// TotalSize of the frame: the end cursor of every region.
func (l *Layout) TotalSize() quant.Offset {
	return quant.MakeOffset(l.fixed, l.v, l.m, l.n, l.mn)
}

func alignLess(d []Object, i, j int) bool {
	if d[i].Align != d[j].Align {
		return d[i].Align > d[j].Align
	}

	return d[i].ID < d[j].ID
}

func alignUp(x, align int64) int64 {
	return (x + align - 1) &^ (align - 1)
}

func pow2Ceil(x uint64) uint64 {
	if x <= 1 {
		return 1
	}

	return 1 << bits.Len64(x-1)
}
