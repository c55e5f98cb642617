package monitor

// Range is the brightness range reported by the monitor
type Range struct {
	Min     uint32
	Current uint32
	Max     uint32
}

// ClampPercent limits p to [0, 100]
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Scale converts a percentage into a raw value within [Min, Max]. The percentage is clamped first
func (r Range) Scale(percent int) uint32 {
	if r.Max <= r.Min {
		return r.Min
	}
	p := uint64(ClampPercent(percent))
	return r.Min + uint32(p*uint64(r.Max-r.Min)/100)
}

// Percent is the inverse of Scale, rounded down
func (r Range) Percent() int {
	if r.Max <= r.Min || r.Current <= r.Min {
		return 0
	}
	if r.Current >= r.Max {
		return 100
	}
	return int(uint64(r.Current-r.Min) * 100 / uint64(r.Max-r.Min))
}
