/*
Package quant represents size-like quantities of code generation: element
counts of vectors and matrices, bit widths of machine types, stack offsets.

A quantity is a coefficient known at compile time paired with a Scale marking
the runtime multiplier the coefficient is subject to. None means the value is
exact. Any other Scale means the true value is coefficient times an unresolved
factor guaranteed to be >= 1, so the coefficient is a safe lower bound.

The algebra is closed under a single multiplier class at a time. Adding two
non-zero quantities of different scales is a bug in the caller and panics.
Zero is the additive identity under every scale.
*/
package quant

import (
	"math/bits"
	"strconv"
)

type (
	coeff interface {
		~uint32 | ~uint64
	}
)

func addq[T coeff](ac T, as Scale, bc T, bs Scale) (T, Scale) {
	if ac != 0 && bc != 0 && as != bs {
		panic("incompatible scales")
	}

	if bc != 0 {
		as = bs
	}

	return ac + bc, as
}

func subq[T coeff](ac T, as Scale, bc T, bs Scale) (T, Scale) {
	if ac != 0 && bc != 0 && as != bs {
		panic("incompatible scales")
	}

	if bc != 0 {
		as = bs
	}

	return ac - bc, as
}

func fixedq[T coeff](c T, s Scale) T {
	if s != None && c != 0 {
		panic("fixed value of a scalable quantity")
	}

	return c
}

// Ordering between quantities of different scales is decidable only in the
// directions the >= 1 multiplier guarantee covers. Everything else is
// unknown and reported as false both ways.

func knownLT[T coeff](ac T, as Scale, bc T, bs Scale) bool {
	if as == None || as == bs {
		return ac < bc
	}

	return false
}

func knownGT[T coeff](ac T, as Scale, bc T, bs Scale) bool {
	if bs == None || as == bs {
		return ac > bc
	}

	return false
}

func knownLE[T coeff](ac T, as Scale, bc T, bs Scale) bool {
	if as == None || as == bs {
		return ac <= bc
	}

	return false
}

func knownGE[T coeff](ac T, as Scale, bc T, bs Scale) bool {
	if bs == None || as == bs {
		return ac >= bc
	}

	return false
}

func hasFactor[T coeff](ac T, as Scale, bc T, bs Scale) bool {
	return as == bs && ac%bc == 0
}

func factor[T coeff](ac T, as Scale, bc T, bs Scale) T {
	if !hasFactor(ac, as, bc, bs) {
		panic("no known scalar factor")
	}

	return ac / bc
}

func nextPow2[T coeff](c T) T {
	return 1 << bits.Len64(uint64(c))
}

func qstr[T coeff](c T, s Scale) string {
	if s == None {
		return strconv.FormatUint(uint64(c), 10)
	}

	return s.String() + " x " + strconv.FormatUint(uint64(c), 10)
}
