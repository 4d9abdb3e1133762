/*
Package llt is the compact machine-level type descriptor: just enough shape
to pick registers and lay out memory, nothing about signedness or semantics.

A Type is one of scalar, pointer, vector, matrix, pointer vector, pointer
matrix, or invalid. It is a small immutable value, compared and hashed with
==; the zero value is the canonical invalid descriptor.
*/
package llt

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"

	"github.com/machgen/mach/codegen/quant"
	"github.com/machgen/mach/codegen/vt"
)

type (
	Kind uint8

	// Type describes a machine type shape.
	// Fields not owned by the kind are zero, so == is kind-exact.
	Type struct {
		kind Kind

		ec   quant.Count // vector kinds
		rows quant.Count // matrix kinds
		cols quant.Count

		bits uint32 // scalar size, element size, or pointer size
		as   uint32 // address space, pointer kinds
	}
)

const (
	KindInvalid Kind = iota
	KindScalar
	KindPointer
	KindVector
	KindMatrix
	KindPointerVector
	KindPointerMatrix
)

// Scalar is a plain value of the given bit width.
func Scalar(bits uint32) Type {
	return Type{kind: KindScalar, bits: bits}
}

// Pointer into the given address space, sized bits wide.
func Pointer(as, bits uint32) Type {
	return Type{kind: KindPointer, bits: bits, as: as}
}

// Vector of ec elements of elemBits each.
// A count that is not a vector count degenerates to a scalar.
func Vector(ec quant.Count, elemBits uint32) Type {
	if !ec.IsVector() {
		return Scalar(elemBits)
	}

	return Type{kind: KindVector, ec: ec, bits: elemBits}
}

// Matrix of rows x cols elements of elemBits each. Row counts may scale
// with mscale, column counts with nscale, nothing else.
// A 1x1 non-scalable matrix degenerates to a scalar.
func Matrix(rows, cols quant.Count, elemBits uint32) Type {
	if rows.Scale()&^quant.M != 0 || cols.Scale()&^quant.N != 0 {
		panic("bad matrix dimension scales")
	}

	if rows.Min() <= 1 && cols.Min() <= 1 && !rows.IsScalable() && !cols.IsScalable() {
		return Scalar(elemBits)
	}

	return Type{kind: KindMatrix, rows: rows, cols: cols, bits: elemBits}
}

// PointerVector is a vector of ec pointers into address space as.
func PointerVector(ec quant.Count, as, pointerBits uint32) Type {
	if !ec.IsVector() {
		return Pointer(as, pointerBits)
	}

	return Type{kind: KindPointerVector, ec: ec, bits: pointerBits, as: as}
}

// PointerMatrix is a rows x cols matrix of pointers into address space as.
func PointerMatrix(rows, cols quant.Count, as, pointerBits uint32) Type {
	if rows.Scale()&^quant.M != 0 || cols.Scale()&^quant.N != 0 {
		panic("bad matrix dimension scales")
	}

	if rows.Min() <= 1 && cols.Min() <= 1 && !rows.IsScalable() && !cols.IsScalable() {
		return Pointer(as, pointerBits)
	}

	return Type{kind: KindPointerMatrix, rows: rows, cols: cols, bits: pointerBits, as: as}
}

// ScalarOrVector is Vector when ec is a vector count, Scalar otherwise.
func ScalarOrVector(ec quant.Count, bits uint32) Type {
	return Vector(ec, bits)
}

// FromValueType classifies a registry type into a descriptor.
// Unrepresentable types map to the invalid descriptor.
func FromValueType(t vt.VT) Type {
	switch {
	case t.IsMatrix():
		return Matrix(t.Rows(), t.Cols(), uint32(t.ElementType().SizeInBits().Fixed()))
	case t.IsVector():
		return Vector(t.ElementCount(), uint32(t.ElementType().SizeInBits().Fixed()))
	case t.IsValid() && !t.IsScalableTargetExt():
		return Scalar(uint32(t.SizeInBits().Fixed()))
	default:
		return Type{}
	}
}

func (t Type) Kind() Kind { return t.kind }

func (t Type) IsValid() bool  { return t.kind != KindInvalid }
func (t Type) IsScalar() bool { return t.kind == KindScalar }

func (t Type) IsPointer() bool {
	return t.kind == KindPointer || t.kind == KindPointerVector || t.kind == KindPointerMatrix
}

func (t Type) IsVector() bool {
	return t.kind == KindVector || t.kind == KindPointerVector
}

func (t Type) IsMatrix() bool {
	return t.kind == KindMatrix || t.kind == KindPointerMatrix
}

func (t Type) IsPointerVector() bool { return t.kind == KindPointerVector }
func (t Type) IsPointerMatrix() bool { return t.kind == KindPointerMatrix }

// ElementCount of a vector or matrix descriptor.
// For matrices it is rows times cols under the combined dimension scales.
func (t Type) ElementCount() quant.Count {
	switch t.kind {
	case KindVector, KindPointerVector:
		return t.ec
	case KindMatrix, KindPointerMatrix:
		return quant.MakeCount(t.rows.Min()*t.cols.Min(), t.rows.Scale()|t.cols.Scale())
	default:
		panic(t.kind)
	}
}

// Rows of a matrix descriptor.
func (t Type) Rows() quant.Count {
	if !t.IsMatrix() {
		panic(t.kind)
	}

	return t.rows
}

// Cols of a matrix descriptor.
func (t Type) Cols() quant.Count {
	if !t.IsMatrix() {
		panic(t.kind)
	}

	return t.cols
}

// ScalarSizeInBits is the size of one element,
// or of the whole value for scalars and pointers.
func (t Type) ScalarSizeInBits() uint32 {
	if t.kind == KindInvalid {
		panic(t.kind)
	}

	return t.bits
}

// AddressSpace of a pointer descriptor.
func (t Type) AddressSpace() uint32 {
	if !t.IsPointer() {
		panic(t.kind)
	}

	return t.as
}

// SizeInBits is the total size of the value.
func (t Type) SizeInBits() quant.Size {
	switch t.kind {
	case KindScalar, KindPointer:
		return quant.SizeFixed(uint64(t.bits))
	case KindVector, KindPointerVector:
		return quant.MakeSize(uint64(t.bits)*uint64(t.ec.Min()), t.ec.Scale())
	case KindMatrix, KindPointerMatrix:
		return quant.MakeSize(uint64(t.bits)*uint64(t.rows.Min())*uint64(t.cols.Min()), t.rows.Scale()|t.cols.Scale())
	default:
		panic(t.kind)
	}
}

// ElementType of a vector or matrix descriptor: the scalar or pointer
// one element is. Scalars and pointers are their own element type.
func (t Type) ElementType() Type {
	switch t.kind {
	case KindScalar, KindPointer:
		return t
	case KindVector, KindMatrix:
		return Scalar(t.bits)
	case KindPointerVector, KindPointerMatrix:
		return Pointer(t.as, t.bits)
	default:
		panic(t.kind)
	}
}

// ScalarType is the descriptor with any vector or matrix shape stripped.
func (t Type) ScalarType() Type {
	return t.ElementType()
}

// ChangeElementType keeps the shape and replaces the element.
func (t Type) ChangeElementType(elem Type) Type {
	switch {
	case elem.IsScalar():
		switch t.kind {
		case KindScalar, KindPointer:
			return elem
		case KindVector, KindPointerVector:
			return Vector(t.ec, elem.bits)
		case KindMatrix, KindPointerMatrix:
			return Matrix(t.rows, t.cols, elem.bits)
		}
	case elem.kind == KindPointer:
		switch t.kind {
		case KindScalar, KindPointer:
			return elem
		case KindVector, KindPointerVector:
			return PointerVector(t.ec, elem.as, elem.bits)
		case KindMatrix, KindPointerMatrix:
			return PointerMatrix(t.rows, t.cols, elem.as, elem.bits)
		}
	}

	panic(elem.kind)
}

// ChangeElementCount keeps the element and replaces the vector shape.
func (t Type) ChangeElementCount(ec quant.Count) Type {
	switch t.kind {
	case KindScalar, KindVector:
		return Vector(ec, t.bits)
	case KindPointer, KindPointerVector:
		return PointerVector(ec, t.as, t.bits)
	default:
		panic(t.kind)
	}
}

func (t Type) String() string {
	switch t.kind {
	case KindScalar:
		return "s" + strconv.FormatUint(uint64(t.bits), 10)
	case KindPointer:
		return "p" + strconv.FormatUint(uint64(t.as), 10)
	case KindVector, KindPointerVector:
		return "<" + t.ec.String() + " x " + t.ElementType().String() + ">"
	case KindMatrix, KindPointerMatrix:
		return "<" + t.rows.String() + " x " + t.cols.String() + " x " + t.ElementType().String() + ">"
	default:
		return "LLT_invalid"
	}
}

func (t Type) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, t.String())
}
