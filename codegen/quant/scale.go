package quant

type (
	// Scale marks which runtime multiplier applies to a quantity coefficient.
	// The multiplier is only known to be >= 1 until run time.
	Scale uint8
)

const (
	None Scale = 0
	V    Scale = 1 << 0
	M    Scale = 1 << 1
	N    Scale = 1 << 2
	MN   Scale = M | N
)

func (s Scale) String() string {
	switch s {
	case None:
		return ""
	case V:
		return "vscale"
	case M:
		return "mscale"
	case N:
		return "nscale"
	case MN:
		return "mnscale"
	default:
		panic(s)
	}
}
