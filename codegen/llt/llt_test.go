package llt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machgen/mach/codegen/quant"
	"github.com/machgen/mach/codegen/vt"
)

func TestScalar(t *testing.T) {
	s := Scalar(32)

	assert.True(t, s.IsValid())
	assert.True(t, s.IsScalar())
	assert.False(t, s.IsVector())
	assert.Equal(t, uint32(32), s.ScalarSizeInBits())
	assert.Equal(t, quant.SizeFixed(32), s.SizeInBits())
	assert.Equal(t, "s32", s.String())
}

func TestPointer(t *testing.T) {
	p := Pointer(1, 64)

	assert.True(t, p.IsPointer())
	assert.False(t, p.IsVector())
	assert.Equal(t, uint32(1), p.AddressSpace())
	assert.Equal(t, uint32(64), p.ScalarSizeInBits())
	assert.Equal(t, quant.SizeFixed(64), p.SizeInBits())
	assert.Equal(t, "p1", p.String())
}

func TestVector(t *testing.T) {
	v := Vector(quant.CountFixed(4), 32)

	require.True(t, v.IsVector())
	assert.Equal(t, quant.CountFixed(4), v.ElementCount())
	assert.Equal(t, uint32(32), v.ScalarSizeInBits())
	assert.Equal(t, quant.SizeFixed(128), v.SizeInBits())
	assert.Equal(t, Scalar(32), v.ElementType())
	assert.Equal(t, "<4 x s32>", v.String())

	sv := Vector(quant.CountScalable(4), 32)

	require.True(t, sv.IsVector())
	assert.Equal(t, quant.SizeScalable(128), sv.SizeInBits())
	assert.Equal(t, "<vscale x 4 x s32>", sv.String())

	// single fixed element is no vector at all
	assert.Equal(t, Scalar(16), Vector(quant.CountFixed(1), 16))

	// a single scalable element still is
	assert.True(t, Vector(quant.CountScalable(1), 16).IsVector())
}

func TestMatrix(t *testing.T) {
	m := Matrix(quant.CountFixed(4), quant.CountFixed(4), 32)

	require.True(t, m.IsMatrix())
	assert.Equal(t, quant.CountFixed(4), m.Rows())
	assert.Equal(t, quant.CountFixed(4), m.Cols())
	assert.Equal(t, quant.CountFixed(16), m.ElementCount())
	assert.Equal(t, quant.SizeFixed(512), m.SizeInBits())
	assert.Equal(t, "<4 x 4 x s32>", m.String())

	sm := Matrix(quant.CountScalableM(4), quant.CountScalableN(4), 32)

	require.True(t, sm.IsMatrix())
	assert.Equal(t, quant.CountScalableMN(16), sm.ElementCount())
	assert.Equal(t, quant.SizeScalableMN(512), sm.SizeInBits())
	assert.Equal(t, "<mscale x 4 x nscale x 4 x s32>", sm.String())

	// 1x1 fixed matrix degenerates to its element
	assert.Equal(t, Scalar(32), Matrix(quant.CountFixed(1), quant.CountFixed(1), 32))

	// a scalable 1x1 does not
	assert.True(t, Matrix(quant.CountScalableM(1), quant.CountFixed(1), 32).IsMatrix())

	// rows scale with mscale, cols with nscale; anything else is a bug
	assert.Panics(t, func() { Matrix(quant.CountScalable(4), quant.CountFixed(4), 32) })
	assert.Panics(t, func() { Matrix(quant.CountFixed(4), quant.CountScalableM(4), 32) })
}

func TestPointerVector(t *testing.T) {
	pv := PointerVector(quant.CountFixed(4), 0, 64)

	require.True(t, pv.IsVector())
	require.True(t, pv.IsPointer())
	assert.True(t, pv.IsPointerVector())
	assert.Equal(t, uint32(0), pv.AddressSpace())
	assert.Equal(t, quant.SizeFixed(256), pv.SizeInBits())
	assert.Equal(t, Pointer(0, 64), pv.ElementType())
	assert.Equal(t, "<4 x p0>", pv.String())

	// one pointer is just a pointer
	assert.Equal(t, Pointer(2, 64), PointerVector(quant.CountFixed(1), 2, 64))
}

func TestPointerMatrix(t *testing.T) {
	pm := PointerMatrix(quant.CountFixed(2), quant.CountFixed(4), 1, 64)

	require.True(t, pm.IsMatrix())
	require.True(t, pm.IsPointer())
	assert.True(t, pm.IsPointerMatrix())
	assert.Equal(t, quant.CountFixed(8), pm.ElementCount())
	assert.Equal(t, "<2 x 4 x p1>", pm.String())
}

func TestInvalid(t *testing.T) {
	var z Type

	assert.False(t, z.IsValid())
	assert.Equal(t, "LLT_invalid", z.String())

	// invalid is canonical: independently constructed invalids are equal
	assert.Equal(t, FromValueType(vt.INVALID), FromValueType(vt.SCALABLE_EXT))

	// and unequal to every valid descriptor
	for _, v := range []Type{
		Scalar(32),
		Pointer(0, 64),
		Vector(quant.CountFixed(4), 32),
		Matrix(quant.CountFixed(4), quant.CountFixed(4), 32),
	} {
		assert.NotEqual(t, z, v)
	}

	assert.Panics(t, func() { z.SizeInBits() })
	assert.Panics(t, func() { z.ScalarSizeInBits() })
}

func TestFromValueType(t *testing.T) {
	for _, tc := range []struct {
		vt   vt.VT
		want Type
	}{
		{vt.I32, Scalar(32)},
		{vt.I1, Scalar(1)},
		{vt.F64, Scalar(64)},
		{vt.V4I32, Vector(quant.CountFixed(4), 32)},
		{vt.V16I8, Vector(quant.CountFixed(16), 8)},
		{vt.NXV4I32, Vector(quant.CountScalable(4), 32)},
		{vt.M4X4F32, Matrix(quant.CountFixed(4), quant.CountFixed(4), 32)},
		{vt.NXM4X4F32, Matrix(quant.CountScalableM(4), quant.CountScalableN(4), 32)},
		{vt.M1X1I32, Scalar(32)}, // degenerate matrix
		{vt.INVALID, Type{}},
		{vt.SCALABLE_EXT, Type{}},
	} {
		if got := FromValueType(tc.vt); got != tc.want {
			t.Errorf("FromValueType(%v) = %v, want %v", tc.vt, got, tc.want)
		}
	}
}

func TestChangeShape(t *testing.T) {
	v := Vector(quant.CountFixed(4), 32)

	assert.Equal(t, Vector(quant.CountFixed(4), 64), v.ChangeElementType(Scalar(64)))
	assert.Equal(t, PointerVector(quant.CountFixed(4), 1, 64), v.ChangeElementType(Pointer(1, 64)))
	assert.Equal(t, Vector(quant.CountFixed(8), 32), v.ChangeElementCount(quant.CountFixed(8)))
	assert.Equal(t, Scalar(32), v.ChangeElementCount(quant.CountFixed(1)))
	assert.Equal(t, Scalar(32), v.ScalarType())

	m := Matrix(quant.CountFixed(4), quant.CountFixed(2), 32)

	assert.Equal(t, Matrix(quant.CountFixed(4), quant.CountFixed(2), 16), m.ChangeElementType(Scalar(16)))

	s := Scalar(32)

	assert.Equal(t, Vector(quant.CountScalable(2), 32), s.ChangeElementCount(quant.CountScalable(2)))
}

func TestTypeAsMapKey(t *testing.T) {
	seen := map[Type]int{}

	seen[Scalar(32)]++
	seen[Scalar(32)]++
	seen[Vector(quant.CountFixed(4), 32)]++
	seen[Vector(quant.CountScalable(4), 32)]++

	assert.Equal(t, 2, seen[Scalar(32)])
	assert.Equal(t, 1, seen[Vector(quant.CountFixed(4), 32)])
	assert.Equal(t, 1, seen[Vector(quant.CountScalable(4), 32)])
	assert.Len(t, seen, 3)
}
