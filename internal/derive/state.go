package derive

// State is a step of the derivation pipeline. A request moves strictly forward
// from Start to Done, or stops at the first failing state.
type State int

const (
	Start State = iota
	SeedDecoded
	KeyDecoded
	MaskResolved
	Masked
	Computed
	Done
)

var stateNames = [...]string{ //nolint:gochecknoglobals
	Start:        "start",
	SeedDecoded:  "seed-decoded",
	KeyDecoded:   "key-decoded",
	MaskResolved: "mask-resolved",
	Masked:       "masked",
	Computed:     "computed",
	Done:         "done",
}

func (s State) String() string {
	if s < Start || s > Done {
		return "unknown"
	}

	return stateNames[s]
}

// action describes the work that leaves state s, for error messages.
func (s State) action() string {
	switch s {
	case Start:
		return "decoding seed"
	case SeedDecoded:
		return "decoding key"
	case KeyDecoded:
		return "resolving mask"
	case MaskResolved:
		return "masking seed"
	case Masked:
		return "computing CMAC"
	default:
		return "deriving key"
	}
}
