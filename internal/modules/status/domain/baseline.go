package domain

// NetworkBaseline pins the cumulative counters seen at the first successful
// read. Later reads are reported relative to it; the baseline never moves.
type NetworkBaseline struct {
	start Traffic
	set   bool
}

// Delta records totals as the baseline on first use and returns the
// difference from the baseline.
func (b *NetworkBaseline) Delta(totals Traffic) Traffic {
	if !b.set {
		b.start = totals
		b.set = true
	}
	return Traffic{
		RxBytes: totals.RxBytes - b.start.RxBytes,
		TxBytes: totals.TxBytes - b.start.TxBytes,
	}
}
