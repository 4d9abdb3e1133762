package main

import (
	"strconv"
	"strings"

	"tlog.app/go/errors"

	"github.com/machgen/mach/codegen/llt"
	"github.com/machgen/mach/codegen/quant"
)

// pointerBits is the pointer size assumed by the tool.
const pointerBits = 64

// ParseType reads the descriptor syntax llt.Type.String emits:
// s32, p1, <4 x s32>, <vscale x 4 x s32>, <4 x 4 x s32>,
// <mscale x 4 x nscale x 4 x s32>, <4 x p0>.
func ParseType(s string) (llt.Type, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "<") {
		if !strings.HasSuffix(s, ">") {
			return llt.Type{}, errors.New("unclosed shape")
		}

		return parseShape(s[1 : len(s)-1])
	}

	return parseElem(s)
}

func parseElem(s string) (llt.Type, error) {
	if len(s) < 2 {
		return llt.Type{}, errors.New("short type: %q", s)
	}

	x, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil {
		return llt.Type{}, errors.Wrap(err, "%q", s)
	}

	switch s[0] {
	case 's':
		return llt.Scalar(uint32(x)), nil
	case 'p':
		return llt.Pointer(uint32(x), pointerBits), nil
	default:
		return llt.Type{}, errors.New("bad element type: %q", s)
	}
}

func parseShape(s string) (llt.Type, error) {
	toks := strings.Split(s, " x ")
	if len(toks) < 2 {
		return llt.Type{}, errors.New("bad shape: %q", s)
	}

	elem, err := parseElem(strings.TrimSpace(toks[len(toks)-1]))
	if err != nil {
		return llt.Type{}, errors.Wrap(err, "element")
	}

	counts, err := parseCounts(toks[:len(toks)-1])
	if err != nil {
		return llt.Type{}, err
	}

	switch len(counts) {
	case 1:
		ec := counts[0]

		if ec.Scale()&^quant.V != 0 {
			return llt.Type{}, errors.New("bad vector count scale")
		}

		if elem.IsPointer() {
			return llt.PointerVector(ec, elem.AddressSpace(), elem.ScalarSizeInBits()), nil
		}

		return llt.Vector(ec, elem.ScalarSizeInBits()), nil
	case 2:
		rows := retag(counts[0], quant.M)
		cols := retag(counts[1], quant.N)

		if rows.Scale()&^quant.M != 0 || cols.Scale()&^quant.N != 0 {
			return llt.Type{}, errors.New("bad matrix dimension scales")
		}

		if elem.IsPointer() {
			return llt.PointerMatrix(rows, cols, elem.AddressSpace(), elem.ScalarSizeInBits()), nil
		}

		return llt.Matrix(rows, cols, elem.ScalarSizeInBits()), nil
	default:
		return llt.Type{}, errors.New("bad shape rank: %d", len(counts))
	}
}

func parseCounts(toks []string) ([]quant.Count, error) {
	var r []quant.Count

	scale := quant.None

	for _, tok := range toks {
		tok = strings.TrimSpace(tok)

		switch tok {
		case "vscale":
			scale = quant.V
			continue
		case "mscale":
			scale = quant.M
			continue
		case "nscale":
			scale = quant.N
			continue
		case "mnscale":
			scale = quant.MN
			continue
		}

		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "count %q", tok)
		}

		r = append(r, quant.MakeCount(uint32(n), scale))
		scale = quant.None
	}

	if scale != quant.None {
		return nil, errors.New("dangling scale")
	}

	return r, nil
}

// retag maps a generic vscale mark on a matrix dimension to the
// dimension's own scale class.
func retag(c quant.Count, s quant.Scale) quant.Count {
	if c.Scale() == quant.None {
		return c
	}

	if c.Scale() == quant.V || c.Scale() == s {
		return quant.MakeCount(c.Min(), s)
	}

	return c
}
