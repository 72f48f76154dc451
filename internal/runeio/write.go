package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteANSIString writes s to w, encoding C1 control runes in their 7-bit
// escape form (e.g. CSI as ESC [) and NEL as "\r\n". Everything else is
// written as utf8.
func WriteANSIString(w io.Writer, s string) (n int, err error) {
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		var b []byte
		switch {
		case r == 0x85:
			b = []byte{'\r', '\n'}
		case 0x80 <= r && r <= 0x9f:
			b = []byte{0x1b, byte(r ^ 0xc0)}
		default:
			b = buf[:utf8.EncodeRune(buf[:], r)]
		}
		m, err := w.Write(b)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
