/*
Package vt enumerates the concrete machine value types the code generator
knows about: integer and float scalars, fixed and scalable vectors, fixed
and scalable matrices. It is a lookup table; the shape algebra lives in
quant and the descriptors built from it in llt.
*/
package vt

import "github.com/machgen/mach/codegen/quant"

type (
	VT uint8
)

const (
	INVALID VT = iota

	I1
	I8
	I16
	I32
	I64
	I128

	F16
	F32
	F64

	V2I8
	V4I8
	V8I8
	V16I8
	V2I16
	V4I16
	V8I16
	V2I32
	V4I32
	V8I32
	V2I64
	V4I64
	V2F32
	V4F32
	V8F32
	V2F64
	V4F64

	NXV4I8
	NXV8I8
	NXV16I8
	NXV4I16
	NXV8I16
	NXV2I32
	NXV4I32
	NXV8I32
	NXV2I64
	NXV2F32
	NXV4F32
	NXV2F64

	M2X2I32
	M4X4I32
	M2X4F32
	M4X4F32
	M8X8F32
	M1X1I32

	NXM4X4I32
	NXM4X4F32

	// SCALABLE_EXT is the scalable target extension type penalty box.
	// It is a valid type but has no representable shape.
	SCALABLE_EXT

	vtLast
)

const (
	fInt = 1 << iota
	fFloat
	fVector
	fMatrix
	fScalable
	fExt
)

type info struct {
	name  string
	bits  uint16 // scalar size
	elem  VT     // vector/matrix element
	n     uint16 // vector elements
	rows  uint16 // matrix dims
	cols  uint16
	flags uint8
}

var infos = [vtLast]info{
	INVALID: {name: "INVALID"},

	I1:   {name: "i1", bits: 1, flags: fInt},
	I8:   {name: "i8", bits: 8, flags: fInt},
	I16:  {name: "i16", bits: 16, flags: fInt},
	I32:  {name: "i32", bits: 32, flags: fInt},
	I64:  {name: "i64", bits: 64, flags: fInt},
	I128: {name: "i128", bits: 128, flags: fInt},

	F16: {name: "f16", bits: 16, flags: fFloat},
	F32: {name: "f32", bits: 32, flags: fFloat},
	F64: {name: "f64", bits: 64, flags: fFloat},

	V2I8:  {name: "v2i8", elem: I8, n: 2, flags: fVector},
	V4I8:  {name: "v4i8", elem: I8, n: 4, flags: fVector},
	V8I8:  {name: "v8i8", elem: I8, n: 8, flags: fVector},
	V16I8: {name: "v16i8", elem: I8, n: 16, flags: fVector},
	V2I16: {name: "v2i16", elem: I16, n: 2, flags: fVector},
	V4I16: {name: "v4i16", elem: I16, n: 4, flags: fVector},
	V8I16: {name: "v8i16", elem: I16, n: 8, flags: fVector},
	V2I32: {name: "v2i32", elem: I32, n: 2, flags: fVector},
	V4I32: {name: "v4i32", elem: I32, n: 4, flags: fVector},
	V8I32: {name: "v8i32", elem: I32, n: 8, flags: fVector},
	V2I64: {name: "v2i64", elem: I64, n: 2, flags: fVector},
	V4I64: {name: "v4i64", elem: I64, n: 4, flags: fVector},
	V2F32: {name: "v2f32", elem: F32, n: 2, flags: fVector},
	V4F32: {name: "v4f32", elem: F32, n: 4, flags: fVector},
	V8F32: {name: "v8f32", elem: F32, n: 8, flags: fVector},
	V2F64: {name: "v2f64", elem: F64, n: 2, flags: fVector},
	V4F64: {name: "v4f64", elem: F64, n: 4, flags: fVector},

	NXV4I8:  {name: "nxv4i8", elem: I8, n: 4, flags: fVector | fScalable},
	NXV8I8:  {name: "nxv8i8", elem: I8, n: 8, flags: fVector | fScalable},
	NXV16I8: {name: "nxv16i8", elem: I8, n: 16, flags: fVector | fScalable},
	NXV4I16: {name: "nxv4i16", elem: I16, n: 4, flags: fVector | fScalable},
	NXV8I16: {name: "nxv8i16", elem: I16, n: 8, flags: fVector | fScalable},
	NXV2I32: {name: "nxv2i32", elem: I32, n: 2, flags: fVector | fScalable},
	NXV4I32: {name: "nxv4i32", elem: I32, n: 4, flags: fVector | fScalable},
	NXV8I32: {name: "nxv8i32", elem: I32, n: 8, flags: fVector | fScalable},
	NXV2I64: {name: "nxv2i64", elem: I64, n: 2, flags: fVector | fScalable},
	NXV2F32: {name: "nxv2f32", elem: F32, n: 2, flags: fVector | fScalable},
	NXV4F32: {name: "nxv4f32", elem: F32, n: 4, flags: fVector | fScalable},
	NXV2F64: {name: "nxv2f64", elem: F64, n: 2, flags: fVector | fScalable},

	M2X2I32: {name: "m2x2i32", elem: I32, rows: 2, cols: 2, flags: fMatrix},
	M4X4I32: {name: "m4x4i32", elem: I32, rows: 4, cols: 4, flags: fMatrix},
	M2X4F32: {name: "m2x4f32", elem: F32, rows: 2, cols: 4, flags: fMatrix},
	M4X4F32: {name: "m4x4f32", elem: F32, rows: 4, cols: 4, flags: fMatrix},
	M8X8F32: {name: "m8x8f32", elem: F32, rows: 8, cols: 8, flags: fMatrix},
	M1X1I32: {name: "m1x1i32", elem: I32, rows: 1, cols: 1, flags: fMatrix},

	NXM4X4I32: {name: "nxm4x4i32", elem: I32, rows: 4, cols: 4, flags: fMatrix | fScalable},
	NXM4X4F32: {name: "nxm4x4f32", elem: F32, rows: 4, cols: 4, flags: fMatrix | fScalable},

	SCALABLE_EXT: {name: "scalable_ext", flags: fExt | fScalable},
}

func (t VT) info() info {
	if t >= vtLast {
		panic(t)
	}

	return infos[t]
}

func (t VT) IsValid() bool { return t != INVALID && t < vtLast }

func (t VT) IsInteger() bool { return t.info().flags&fInt != 0 }
func (t VT) IsFloat() bool   { return t.info().flags&fFloat != 0 }
func (t VT) IsVector() bool  { return t.info().flags&fVector != 0 }
func (t VT) IsMatrix() bool  { return t.info().flags&fMatrix != 0 }

func (t VT) IsScalableVector() bool {
	f := t.info().flags
	return f&fVector != 0 && f&fScalable != 0
}

func (t VT) IsScalableMatrix() bool {
	f := t.info().flags
	return f&fMatrix != 0 && f&fScalable != 0
}

func (t VT) IsScalableTargetExt() bool {
	return t.info().flags&fExt != 0
}

// ElementType of a vector or matrix type; the type itself otherwise.
func (t VT) ElementType() VT {
	i := t.info()

	if i.flags&(fVector|fMatrix) != 0 {
		return i.elem
	}

	return t
}

// NumElements is the minimum number of vector elements,
// or rows*cols for a matrix.
func (t VT) NumElements() uint32 {
	i := t.info()

	switch {
	case i.flags&fVector != 0:
		return uint32(i.n)
	case i.flags&fMatrix != 0:
		return uint32(i.rows) * uint32(i.cols)
	default:
		panic(t)
	}
}

// ElementCount of a vector or matrix type.
// Matrix counts carry the combined row and column scales.
func (t VT) ElementCount() quant.Count {
	i := t.info()

	switch {
	case i.flags&fVector != 0:
		if i.flags&fScalable != 0 {
			return quant.CountScalable(uint32(i.n))
		}

		return quant.CountFixed(uint32(i.n))
	case i.flags&fMatrix != 0:
		return quant.MakeCount(uint32(i.rows)*uint32(i.cols), t.Rows().Scale()|t.Cols().Scale())
	default:
		panic(t)
	}
}

// Rows of a matrix type. Scalable matrix rows scale with mscale.
func (t VT) Rows() quant.Count {
	i := t.info()

	if i.flags&fMatrix == 0 {
		panic(t)
	}

	if i.flags&fScalable != 0 {
		return quant.CountScalableM(uint32(i.rows))
	}

	return quant.CountFixed(uint32(i.rows))
}

// Cols of a matrix type. Scalable matrix columns scale with nscale.
func (t VT) Cols() quant.Count {
	i := t.info()

	if i.flags&fMatrix == 0 {
		panic(t)
	}

	if i.flags&fScalable != 0 {
		return quant.CountScalableN(uint32(i.cols))
	}

	return quant.CountFixed(uint32(i.cols))
}

func (t VT) SizeInBits() quant.Size {
	i := t.info()

	switch {
	case i.flags&fVector != 0:
		bits := uint64(i.elem.info().bits) * uint64(i.n)

		if i.flags&fScalable != 0 {
			return quant.SizeScalable(bits)
		}

		return quant.SizeFixed(bits)
	case i.flags&fMatrix != 0:
		bits := uint64(i.elem.info().bits) * uint64(i.rows) * uint64(i.cols)

		if i.flags&fScalable != 0 {
			return quant.SizeScalableMN(bits)
		}

		return quant.SizeFixed(bits)
	case i.flags&(fInt|fFloat) != 0:
		return quant.SizeFixed(uint64(i.bits))
	default:
		panic(t)
	}
}

func (t VT) String() string {
	if t >= vtLast {
		return "VT(invalid)"
	}

	return infos[t].name
}

// Vector finds the vector type with the given element type and count.
// INVALID if the table has no such entry.
func Vector(elem VT, n uint32, scalable bool) VT {
	want := uint8(fVector)
	if scalable {
		want |= fScalable
	}

	for t := VT(1); t < vtLast; t++ {
		i := infos[t]

		if i.flags&(fVector|fMatrix|fScalable) == want && i.elem == elem && uint32(i.n) == n {
			return t
		}
	}

	return INVALID
}

// Matrix finds the matrix type with the given element type and dims.
// INVALID if the table has no such entry.
func Matrix(elem VT, rows, cols uint32, scalable bool) VT {
	want := uint8(fMatrix)
	if scalable {
		want |= fScalable
	}

	for t := VT(1); t < vtLast; t++ {
		i := infos[t]

		if i.flags&(fVector|fMatrix|fScalable) == want && i.elem == elem && uint32(i.rows) == rows && uint32(i.cols) == cols {
			return t
		}
	}

	return INVALID
}
