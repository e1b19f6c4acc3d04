package coe

import (
	"errors"
	"fmt"
	"strings"
)

// Style selects the separator placed between words of the same row.
type Style int

const (
	SpaceSeparated Style = iota
	CommaSeparated
)

// Row and vector terminators. They override the style.
const (
	rowBreak   = ",\n"
	terminator = ";\n"
)

// ErrVectorFull is returned when more words are appended than the image holds.
var ErrVectorFull = errors.New("coe: vector already holds every pixel")

// ParseStyle converts a style name to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "space", "spaces", " ":
		return SpaceSeparated, nil
	case "comma", "commas", ",":
		return CommaSeparated, nil
	default:
		return 0, fmt.Errorf("unknown style: %q", s)
	}
}

// Separator returns the in-row separator.
func (s Style) Separator() string {
	if s == CommaSeparated {
		return ","
	}
	return " "
}

func (s Style) String() string {
	switch s {
	case SpaceSeparated:
		return "SpaceSeparated"
	case CommaSeparated:
		return "CommaSeparated"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// VectorBuilder accumulates words in scan order and inserts separators:
// the style separator inside a row, ",\n" after the last word of a row and
// ";\n" after the last word of the image.
type VectorBuilder struct {
	width  int
	total  int
	style  Style
	format Formatter
	n      int
	buf    []byte
}

// NewVectorBuilder returns a builder for a width x height image.
func NewVectorBuilder(width, height int, style Style, f Formatter) *VectorBuilder {
	total := width * height
	// digits plus separator per word
	per := int(f.width) + 1
	if f.repr == Hexadecimal {
		per = int(f.width+3)/4 + 1
	}
	return &VectorBuilder{
		width:  width,
		total:  total,
		style:  style,
		format: f,
		buf:    make([]byte, 0, total*per),
	}
}

// Append adds the next word.
func (b *VectorBuilder) Append(w Word) error {
	if b.n >= b.total {
		return ErrVectorFull
	}
	b.buf = b.format.AppendFormat(b.buf, w)
	b.buf = append(b.buf, b.separator(b.n)...)
	b.n++
	return nil
}

// separator returns the text following the i-th word.
func (b *VectorBuilder) separator(i int) string {
	switch {
	case i == b.total-1:
		return terminator
	case i%b.width == b.width-1:
		return rowBreak
	default:
		return b.style.Separator()
	}
}

// Len returns the number of words appended so far.
func (b *VectorBuilder) Len() int { return b.n }

// Complete reports whether every pixel has a word.
func (b *VectorBuilder) Complete() bool { return b.n == b.total }

// String returns the vector text assembled so far.
func (b *VectorBuilder) String() string { return string(b.buf) }

// Assemble formats words of a width x height image into vector text.
func Assemble(words []Word, width, height int, style Style, f Formatter) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(words) != width*height {
		return "", fmt.Errorf("got %d words for %dx%d image", len(words), width, height)
	}
	b := NewVectorBuilder(width, height, style, f)
	for _, w := range words {
		if err := b.Append(w); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
