package quant

import "tlog.app/go/tlog/tlwire"

type (
	// Offset is a stack offset in bytes: one fixed component and four
	// scalable ones accumulated independently. Each component position
	// names its own multiplier class, so no scale tags are needed.
	// Offsets combine but do not compare; there is no ordering.
	Offset struct {
		fixed int64
		v     int64
		m     int64
		n     int64
		mn    int64
	}
)

func OffsetFixed(fixed int64) Offset {
	return Offset{fixed: fixed}
}

func OffsetScalable(v int64) Offset {
	return Offset{v: v}
}

func OffsetScalableM(m int64) Offset {
	return Offset{m: m}
}

func OffsetScalableN(n int64) Offset {
	return Offset{n: n}
}

func OffsetScalableMN(mn int64) Offset {
	return Offset{mn: mn}
}

func MakeOffset(fixed, v, m, n, mn int64) Offset {
	return Offset{fixed: fixed, v: v, m: m, n: n, mn: mn}
}

func (o Offset) Fixed() int64 { return o.fixed }

// Scalable is the v-scalable component.
func (o Offset) Scalable() int64 { return o.v }

func (o Offset) ScalableV() int64  { return o.v }
func (o Offset) ScalableM() int64  { return o.m }
func (o Offset) ScalableN() int64  { return o.n }
func (o Offset) ScalableMN() int64 { return o.mn }

func (o Offset) Add(x Offset) Offset {
	return Offset{
		fixed: o.fixed + x.fixed,
		v:     o.v + x.v,
		m:     o.m + x.m,
		n:     o.n + x.n,
		mn:    o.mn + x.mn,
	}
}

func (o Offset) Sub(x Offset) Offset {
	return Offset{
		fixed: o.fixed - x.fixed,
		v:     o.v - x.v,
		m:     o.m - x.m,
		n:     o.n - x.n,
		mn:    o.mn - x.mn,
	}
}

func (o Offset) Neg() Offset {
	return Offset{fixed: -o.fixed, v: -o.v, m: -o.m, n: -o.n, mn: -o.mn}
}

// IsZero reports whether every component is zero.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

func (o Offset) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 5)

	b = e.AppendKeyInt(b, "fixed", int(o.fixed))
	b = e.AppendKeyInt(b, "v", int(o.v))
	b = e.AppendKeyInt(b, "m", int(o.m))
	b = e.AppendKeyInt(b, "n", int(o.n))
	b = e.AppendKeyInt(b, "mn", int(o.mn))

	return b
}
