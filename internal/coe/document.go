package coe

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/Kaucasus/coeconverter/internal/color"
)

// AddressPolicy selects how the address width in the header is derived
// from the memory depth.
type AddressPolicy int

const (
	// AddressSqrt reports ceil(sqrt(depth)). This is the value the tool
	// has always written, although it is not the bit width of an address.
	AddressSqrt AddressPolicy = iota
	// AddressLog2 reports ceil(log2(depth)), at least 1.
	AddressLog2
)

// ParseAddressPolicy converts a policy name to an AddressPolicy.
func ParseAddressPolicy(s string) (AddressPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqrt":
		return AddressSqrt, nil
	case "log2", "bits":
		return AddressLog2, nil
	default:
		return 0, fmt.Errorf("unknown address width policy: %q", s)
	}
}

func (p AddressPolicy) String() string {
	if p == AddressLog2 {
		return "log2"
	}
	return "sqrt"
}

// AddressWidth computes the header address width for depth words.
func AddressWidth(depth uint64, p AddressPolicy) uint {
	if p == AddressLog2 {
		if depth <= 2 {
			return 1
		}
		return uint(bits.Len64(depth - 1))
	}
	s := uint64(math.Sqrt(float64(depth)))
	for s*s < depth {
		s++
	}
	for s > 0 && (s-1)*(s-1) >= depth {
		s--
	}
	return uint(s)
}

// Metadata describes the memory a document initializes.
type Metadata struct {
	Mode         color.Mode
	Alpha        color.AlphaPolicy
	Threshold    uint8
	ImageWidth   int
	ImageHeight  int
	WordWidth    uint
	Depth        uint64
	AddressWidth uint
	Radix        int
}

// NewMetadata derives document metadata for a width x height image.
func NewMetadata(width, height int, enc Encoder, f Formatter, p AddressPolicy) Metadata {
	depth := uint64(width) * uint64(height)
	return Metadata{
		Mode:         enc.Mode,
		Alpha:        enc.Alpha,
		Threshold:    enc.Threshold,
		ImageWidth:   width,
		ImageHeight:  height,
		WordWidth:    enc.Width(),
		Depth:        depth,
		AddressWidth: AddressWidth(depth, p),
		Radix:        f.Radix(),
	}
}

// Bits returns the total number of memory bits (width x depth).
func (m Metadata) Bits() uint64 {
	return uint64(m.WordWidth) * m.Depth
}

// Document is a complete memory initialization file.
type Document struct {
	Meta   Metadata
	Vector string
}

// Build returns the document text: a comment header followed by the radix
// and vector declarations.
func (d Document) Build() string {
	var sb strings.Builder
	sb.Grow(len(d.Vector) + 512)
	d.writeHeader(&sb)
	sb.WriteString(d.Vector)
	return sb.String()
}

// WriteTo writes the document text to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Build())
	return int64(n), err
}

func (d Document) writeHeader(sb *strings.Builder) {
	m := d.Meta
	alpha := m.Alpha.String()
	if m.Alpha == color.AlphaThreshold {
		alpha = fmt.Sprintf("%s (threshold %d)", alpha, m.Threshold)
	}
	fmt.Fprintf(sb, "; coeconv memory initialization file\n")
	fmt.Fprintf(sb, "; color mode: %s\n", m.Mode)
	fmt.Fprintf(sb, "; alpha: %s\n", alpha)
	fmt.Fprintf(sb, "; image width: %d\n", m.ImageWidth)
	fmt.Fprintf(sb, "; image height: %d\n", m.ImageHeight)
	fmt.Fprintf(sb, "; memory width: %d\n", m.WordWidth)
	fmt.Fprintf(sb, "; memory depth: %d\n", m.Depth)
	fmt.Fprintf(sb, "; address width: %d\n", m.AddressWidth)
	fmt.Fprintf(sb, "memory_initialization_radix=%d;\n", m.Radix)
	sb.WriteString("memory_initialization_vector=\n")
}
