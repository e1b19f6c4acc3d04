package coe

import (
	"fmt"
	"strconv"
	"strings"
)

// Representation selects the radix words are rendered in.
type Representation int

const (
	Binary Representation = iota
	Decimal
	Hexadecimal
	// Auto picks Hexadecimal when the word width is a multiple of 8 and
	// Binary otherwise.
	Auto
)

// ParseRepresentation converts a representation name to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "binary", "2":
		return Binary, nil
	case "dec", "decimal", "10":
		return Decimal, nil
	case "hex", "hexadecimal", "16":
		return Hexadecimal, nil
	case "auto":
		return Auto, nil
	default:
		return 0, fmt.Errorf("unknown representation: %q", s)
	}
}

// Resolve replaces Auto with the concrete representation for a word width.
func (r Representation) Resolve(width uint) Representation {
	if r != Auto {
		return r
	}
	if width%8 == 0 {
		return Hexadecimal
	}
	return Binary
}

// Radix returns the memory_initialization_radix for a word width.
func (r Representation) Radix(width uint) int {
	switch r.Resolve(width) {
	case Binary:
		return 2
	case Decimal:
		return 10
	default:
		return 16
	}
}

func (r Representation) String() string {
	switch r {
	case Binary:
		return "Binary"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	case Auto:
		return "Auto"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Formatter renders words of a fixed width.
//
// Hexadecimal output is zero-padded to ceil(width/4) uppercase digits.
// Binary output has its natural length unless PadBinary is set, in which
// case it is padded to width digits. Decimal output is never padded.
type Formatter struct {
	repr      Representation
	width     uint
	padBinary bool
}

// NewFormatter returns a Formatter for words of the given width.
func NewFormatter(r Representation, width uint, padBinary bool) Formatter {
	return Formatter{repr: r.Resolve(width), width: width, padBinary: padBinary}
}

// Representation returns the resolved representation.
func (f Formatter) Representation() Representation { return f.repr }

// Radix returns the numeric base of the formatted words.
func (f Formatter) Radix() int { return f.repr.Radix(f.width) }

// Format renders w as a string.
func (f Formatter) Format(w Word) string {
	var buf [32]byte
	return string(f.AppendFormat(buf[:0], w))
}

// AppendFormat appends the rendering of w to dst.
func (f Formatter) AppendFormat(dst []byte, w Word) []byte {
	switch f.repr {
	case Binary:
		if f.padBinary {
			return appendPadded(dst, uint64(w), 2, int(f.width))
		}
		return strconv.AppendUint(dst, uint64(w), 2)
	case Decimal:
		return strconv.AppendUint(dst, uint64(w), 10)
	default:
		start := len(dst)
		dst = appendPadded(dst, uint64(w), 16, int(f.width+3)/4)
		for i := start; i < len(dst); i++ {
			if c := dst[i]; c >= 'a' && c <= 'f' {
				dst[i] = c - ('a' - 'A')
			}
		}
		return dst
	}
}

func appendPadded(dst []byte, v uint64, base, digits int) []byte {
	var buf [64]byte
	s := strconv.AppendUint(buf[:0], v, base)
	for i := len(s); i < digits; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// ParseWord parses one rendered word in the given radix.
func ParseWord(s string, radix int) (Word, error) {
	v, err := strconv.ParseUint(s, radix, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing word %q: %w", s, err)
	}
	return Word(v), nil
}
