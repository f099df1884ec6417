package nfont

import "fmt"

// Expands the given printf-style format into the font buffer and
// returns the resulting text. The buffer grows as needed and keeps
// its capacity for later calls.
func (self *Font) format(format string, args []any) string {
	buffer := fmt.Appendf(self.buffer[:0], format, args...)
	self.buffer = buffer[:0]
	return string(buffer)
}
