package k3piplot

import (
	"math"
	"strings"
)

// Unit conversion constants for decay-time arithmetic.
const (
	CLightMPerSec = 3.0e8
	MMToM         = 1.0 / 1000.0
	SecToNS       = 1.0e9
	NSToPS        = 1000.0

	D0LifetimePS = 0.410
)

// CTauMMToTauNS converts a decay length c*tau in mm to a lifetime in ns.
func CTauMMToTauNS(cTauMM float64) float64 {
	return cTauMM * MMToM / CLightMPerSec * SecToNS
}

// TauNSToTauPS converts a lifetime from ns to ps.
func TauNSToTauPS(tauNS float64) float64 {
	return tauNS * NSToPS
}

// TimeBin is a half-open decay-time interval [Lo, Hi).
type TimeBin struct {
	Lo, Hi float64
}

// Contains reports whether t falls within the bin.
func (b TimeBin) Contains(t float64) bool {
	return t >= b.Lo && t < b.Hi
}

// Label returns a human-readable description of the bin.
func (b TimeBin) Label(unit string) string {
	return strings.Join([]string{
		formatEdge(b.Lo), " <= D0 decay t < ", formatEdge(b.Hi), " [", unit, "]",
	}, "")
}

// MakeTimeBins builds decay-time bins from the given upper bin edges. The
// first bin is open below, and a final overflow bin is open above, so N
// edges yield N+1 bins.
func MakeTimeBins(upperEdges []float64) []TimeBin {
	n := len(upperEdges)
	bins := make([]TimeBin, 0, n+1)
	for b := 0; b < n+1; b++ {
		lo := math.Inf(-1)
		if b > 0 {
			lo = upperEdges[b-1]
		}
		hi := math.Inf(+1)
		if b < n {
			hi = upperEdges[b]
		}
		bins = append(bins, TimeBin{Lo: lo, Hi: hi})
	}
	return bins
}

// SplitCommaSeparated splits a comma-separated list (e.g. of input file
// names), discarding any whitespace.
func SplitCommaSeparated(s string) []string {
	noSpace := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	return strings.Split(noSpace, ",")
}

func formatEdge(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, +1):
		return "inf"
	}
	return formatFloatTick(v, -1)
}
