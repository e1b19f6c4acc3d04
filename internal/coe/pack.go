package coe

// PackWords serializes words big-endian, each in ceil(width/8) bytes.
func PackWords(words []Word, width uint) []byte {
	n := int(width+7) / 8
	out := make([]byte, 0, len(words)*n)
	for _, w := range words {
		for shift := (n - 1) * 8; shift >= 0; shift -= 8 {
			out = append(out, byte(w>>uint(shift)))
		}
	}
	return out
}
