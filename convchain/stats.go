package convchain

// Stats counts sampling work done by an Engine.
type Stats struct {
	Sweeps int64 // iterations requested across all Process calls
	Trials int64 // proposed single-cell flips
	Flips  int64 // accepted flips
	Uphill int64 // flips accepted unconditionally because q ≥ 1
}

// AcceptanceRate returns Flips/Trials, or 0 before any trial.
func (s Stats) AcceptanceRate() float64 {
	if s.Trials == 0 {
		return 0
	}

	return float64(s.Flips) / float64(s.Trials)
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Sweeps: s.Sweeps + o.Sweeps,
		Trials: s.Trials + o.Trials,
		Flips:  s.Flips + o.Flips,
		Uphill: s.Uphill + o.Uphill,
	}
}
