package quant

import "tlog.app/go/tlog/tlwire"

type (
	// Size is a type size in bits. For a fixed type it is the exact size,
	// for a scalable one the known minimum.
	Size struct {
		bits uint64
		s    Scale
	}
)

func SizeFixed(bits uint64) Size {
	return Size{bits: bits}
}

func SizeScalable(bits uint64) Size {
	return Size{bits: bits, s: V}
}

func SizeScalableM(bits uint64) Size {
	return Size{bits: bits, s: M}
}

func SizeScalableN(bits uint64) Size {
	return Size{bits: bits, s: N}
}

func SizeScalableMN(bits uint64) Size {
	return Size{bits: bits, s: MN}
}

func MakeSize(bits uint64, s Scale) Size {
	return Size{bits: bits, s: s}
}

// Min is the minimum size the value can have,
// the exact size if it is not scalable.
func (z Size) Min() uint64 { return z.bits }

func (z Size) Scale() Scale { return z.s }

// Fixed narrows the size to a plain bit count.
// It is the only escape from the algebra and it asserts
// the size is not scalable (or is zero).
func (z Size) Fixed() uint64 {
	return fixedq(z.bits, z.s)
}

func (z Size) IsZero() bool    { return z.bits == 0 }
func (z Size) IsNonZero() bool { return z.bits != 0 }

func (z Size) IsScalable() bool   { return z.s != None }
func (z Size) IsScalableV() bool  { return z.s&V == V }
func (z Size) IsScalableM() bool  { return z.s&M == M }
func (z Size) IsScalableN() bool  { return z.s&N == N }
func (z Size) IsScalableMN() bool { return z.IsScalableM() && z.IsScalableN() }

func (z Size) Add(x Size) Size {
	b, s := addq(z.bits, z.s, x.bits, x.s)
	return Size{bits: b, s: s}
}

func (z Size) Sub(x Size) Size {
	b, s := subq(z.bits, z.s, x.bits, x.s)
	return Size{bits: b, s: s}
}

func (z Size) Mul(k uint64) Size {
	return Size{bits: z.bits * k, s: z.s}
}

func (z Size) WithIncrement(d uint64) Size {
	return Size{bits: z.bits + d, s: z.s}
}

func (z Size) IsKnownEven() bool {
	return z.bits&1 == 0
}

func (z Size) IsKnownMultipleOf(k uint64) bool {
	return z.bits%k == 0
}

func (z Size) DivideCoefficient(k uint64) Size {
	return Size{bits: z.bits / k, s: z.s}
}

func (z Size) MultiplyCoefficient(k uint64) Size {
	return Size{bits: z.bits * k, s: z.s}
}

func (z Size) CoefficientNextPowerOf2() Size {
	return Size{bits: nextPow2(z.bits), s: z.s}
}

func (z Size) HasKnownScalarFactor(x Size) bool {
	return hasFactor(z.bits, z.s, x.bits, x.s)
}

func (z Size) KnownScalarFactor(x Size) uint64 {
	return factor(z.bits, z.s, x.bits, x.s)
}

func (z Size) KnownLT(x Size) bool { return knownLT(z.bits, z.s, x.bits, x.s) }
func (z Size) KnownGT(x Size) bool { return knownGT(z.bits, z.s, x.bits, x.s) }
func (z Size) KnownLE(x Size) bool { return knownLE(z.bits, z.s, x.bits, x.s) }
func (z Size) KnownGE(x Size) bool { return knownGE(z.bits, z.s, x.bits, x.s) }

func (z Size) String() string {
	return qstr(z.bits, z.s)
}

func (z Size) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if z.s == None {
		return e.AppendInt(b, int(z.bits))
	}

	b = e.AppendMap(b, 2)

	b = e.AppendKeyInt(b, "min", int(z.bits))
	b = e.AppendKeyString(b, "scale", z.s.String())

	return b
}

// AlignTo rounds the coefficient up to the next multiple of align.
// For a scalable size only the coefficient is aligned; the true runtime
// value is a multiple of it, not necessarily of align.
func AlignTo(z Size, align uint64) Size {
	if align == 0 {
		panic("align must be non-zero")
	}

	return Size{bits: (z.bits + align - 1) / align * align, s: z.s}
}
