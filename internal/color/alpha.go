package color

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the alpha threshold used when none is configured.
const DefaultThreshold = 127

// AlphaPolicy selects how the alpha channel is appended to a color code.
type AlphaPolicy int

const (
	AlphaNone      AlphaPolicy = iota // no alpha bits
	AlphaThreshold                    // 1 bit, set when alpha >= threshold
	AlphaFull                         // 8-bit passthrough
)

// ParseAlpha converts an alpha policy name to an AlphaPolicy.
func ParseAlpha(s string) (AlphaPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return AlphaNone, nil
	case "threshold", "bit", "1":
		return AlphaThreshold, nil
	case "full", "8":
		return AlphaFull, nil
	default:
		return 0, fmt.Errorf("unknown alpha policy: %q", s)
	}
}

// AlphaFromCount maps a repeated -a flag to a policy: none, once for a
// 1-bit threshold, twice or more for the full 8 bits.
func AlphaFromCount(n int) AlphaPolicy {
	switch {
	case n <= 0:
		return AlphaNone
	case n == 1:
		return AlphaThreshold
	default:
		return AlphaFull
	}
}

// Width returns the number of bits the policy contributes to a word.
func (a AlphaPolicy) Width() uint {
	switch a {
	case AlphaThreshold:
		return 1
	case AlphaFull:
		return 8
	default:
		return 0
	}
}

// IsValid reports whether a is a known policy.
func (a AlphaPolicy) IsValid() bool {
	return a >= AlphaNone && a <= AlphaFull
}

// Encode returns the alpha code for an alpha value. threshold only
// matters for AlphaThreshold.
func (a AlphaPolicy) Encode(alpha, threshold uint8) uint32 {
	switch a {
	case AlphaThreshold:
		if alpha >= threshold {
			return 1
		}
		return 0
	case AlphaFull:
		return uint32(alpha)
	default:
		return 0
	}
}

func (a AlphaPolicy) String() string {
	switch a {
	case AlphaNone:
		return "None"
	case AlphaThreshold:
		return "Threshold"
	case AlphaFull:
		return "Full"
	default:
		return fmt.Sprintf("AlphaPolicy(%d)", int(a))
	}
}
