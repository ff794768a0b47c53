package stats

import "fmt"

const bytesPerGB = 1 << 30

// UsageSample is a snapshot of host CPU and memory utilization. Created
// fresh for each sampling tick and discarded after logging.
type UsageSample struct {
	CPUPercent float64 // overall load, 0-100 nominal
	MemActive  uint64  // bytes
	MemTotal   uint64  // bytes
}

// MemPercent returns active memory as a percentage of total.
func (s UsageSample) MemPercent() float64 {
	if s.MemTotal == 0 {
		return 0
	}
	return float64(s.MemActive) / float64(s.MemTotal) * 100
}

// MemActiveGB returns active memory in gigabytes.
func (s UsageSample) MemActiveGB() float64 {
	return float64(s.MemActive) / bytesPerGB
}

// MemTotalGB returns total memory in gigabytes.
func (s UsageSample) MemTotalGB() float64 {
	return float64(s.MemTotal) / bytesPerGB
}

// String renders the sample as a usage log line.
func (s UsageSample) String() string {
	return fmt.Sprintf("CPU: %.2f%% | Memory: %.2f%% (%.2f GB / %.2f GB used)",
		s.CPUPercent, s.MemPercent(), s.MemActiveGB(), s.MemTotalGB())
}
