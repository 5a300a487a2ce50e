package density

// Mode identifies which optional derivative tables were supplied to
// SnormGrad/SnormHess (§4.6, §9 "Open questions"). It is inferred from
// which tables are nil, never passed explicitly by the caller.
type Mode int

const (
	// ModeFull: μ, dMu, and dACF are all supplied.
	ModeFull Mode = iota
	// ModeNoDMu: μ is supplied but dMu is nil (mean has no θ-dependence).
	ModeNoDMu
	// ModeNoDACF: dACF is nil (the ACF has no θ-dependence for this call).
	ModeNoDACF
	// ModeNoMu: μ itself is nil (treated as zero). A non-nil dMu still
	// contributes its terms to SnormGrad/SnormHess.
	ModeNoMu
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeNoDMu:
		return "no-dmu"
	case ModeNoDACF:
		return "no-dacf"
	case ModeNoMu:
		return "no-mu"
	default:
		return "unknown"
	}
}

func inferMode(mu []float64, dMu [][]float64, dACF [][]float64) Mode {
	switch {
	case mu == nil:
		return ModeNoMu
	case dACF == nil:
		return ModeNoDACF
	case dMu == nil:
		return ModeNoDMu
	default:
		return ModeFull
	}
}
