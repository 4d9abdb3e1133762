package quant

import "tlog.app/go/tlog/tlwire"

type (
	// Count is the number of elements in a vector or matrix dimension.
	// CountFixed(1) is a scalar, CountFixed(4) a four element vector,
	// CountScalable(4) a vector of 4 x vscale elements.
	Count struct {
		n uint32
		s Scale
	}
)

func CountFixed(n uint32) Count {
	return Count{n: n}
}

func CountScalable(n uint32) Count {
	return Count{n: n, s: V}
}

func CountScalableM(n uint32) Count {
	return Count{n: n, s: M}
}

func CountScalableN(n uint32) Count {
	return Count{n: n, s: N}
}

func CountScalableMN(n uint32) Count {
	return Count{n: n, s: MN}
}

func MakeCount(n uint32, s Scale) Count {
	return Count{n: n, s: s}
}

// Min is the minimum number of elements the count can represent,
// the exact number if the count is not scalable.
func (c Count) Min() uint32 { return c.n }

func (c Count) Scale() Scale { return c.s }

// Fixed is Min asserting the count is not scalable.
func (c Count) Fixed() uint32 {
	return fixedq(c.n, c.s)
}

func (c Count) IsZero() bool    { return c.n == 0 }
func (c Count) IsNonZero() bool { return c.n != 0 }

func (c Count) IsScalable() bool   { return c.s != None }
func (c Count) IsScalableV() bool  { return c.s&V == V }
func (c Count) IsScalableM() bool  { return c.s&M == M }
func (c Count) IsScalableN() bool  { return c.s&N == N }
func (c Count) IsScalableMN() bool { return c.IsScalableM() && c.IsScalableN() }

// IsScalar reports exactly one element.
func (c Count) IsScalar() bool {
	return c.s == None && c.n == 1
}

// IsVector reports more than one element, or any number of elements
// subject to a runtime multiplier.
func (c Count) IsVector() bool {
	return c.IsScalableV() && c.n != 0 || c.n > 1
}

func (c Count) Add(x Count) Count {
	n, s := addq(c.n, c.s, x.n, x.s)
	return Count{n: n, s: s}
}

func (c Count) Sub(x Count) Count {
	n, s := subq(c.n, c.s, x.n, x.s)
	return Count{n: n, s: s}
}

func (c Count) Mul(k uint32) Count {
	return Count{n: c.n * k, s: c.s}
}

func (c Count) WithIncrement(d uint32) Count {
	return Count{n: c.n + d, s: c.s}
}

func (c Count) IsKnownEven() bool {
	return c.n&1 == 0
}

func (c Count) IsKnownMultipleOf(k uint32) bool {
	return c.n%k == 0
}

func (c Count) DivideCoefficient(k uint32) Count {
	return Count{n: c.n / k, s: c.s}
}

func (c Count) MultiplyCoefficient(k uint32) Count {
	return Count{n: c.n * k, s: c.s}
}

func (c Count) CoefficientNextPowerOf2() Count {
	return Count{n: nextPow2(c.n), s: c.s}
}

// HasKnownScalarFactor reports whether x tiles c exactly: there is a k
// with x.MultiplyCoefficient(k) == c.
func (c Count) HasKnownScalarFactor(x Count) bool {
	return hasFactor(c.n, c.s, x.n, x.s)
}

func (c Count) KnownScalarFactor(x Count) uint32 {
	return factor(c.n, c.s, x.n, x.s)
}

func (c Count) KnownLT(x Count) bool { return knownLT(c.n, c.s, x.n, x.s) }
func (c Count) KnownGT(x Count) bool { return knownGT(c.n, c.s, x.n, x.s) }
func (c Count) KnownLE(x Count) bool { return knownLE(c.n, c.s, x.n, x.s) }
func (c Count) KnownGE(x Count) bool { return knownGE(c.n, c.s, x.n, x.s) }

func (c Count) String() string {
	return qstr(c.n, c.s)
}

func (c Count) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if c.s == None {
		return e.AppendInt(b, int(c.n))
	}

	b = e.AppendMap(b, 2)

	b = e.AppendKeyInt(b, "min", int(c.n))
	b = e.AppendKeyString(b, "scale", c.s.String())

	return b
}
