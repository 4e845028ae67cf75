package core

import (
	"strconv"
	"strings"
)

// ParseSeparator decodes escape sequences in a separator directive value.
// Recognized sequences are \xHH (two hex digits), \t and \n; any other byte,
// including an unrecognized or truncated escape, is copied verbatim. Callers
// use only the first byte of the result as the active separator.
func ParseSeparator(spec string) string {
	var b strings.Builder
	for i := 0; i < len(spec); i++ {
		if spec[i] == '\\' && i+1 < len(spec) {
			switch spec[i+1] {
			case 'x':
				if i+3 < len(spec) {
					if v, err := strconv.ParseUint(spec[i+2:i+4], 16, 8); err == nil {
						b.WriteByte(byte(v))
						i += 3
						continue
					}
				}
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteByte(spec[i])
	}
	return b.String()
}
