package expander

import (
	"bytes"
	"strings"
)

// splitLines splits data into lines, each keeping its trailing newline.
// The final element has no newline when the input does not end with one.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, data)
			break
		}
		lines = append(lines, data[:i+1])
		data = data[i+1:]
	}
	return lines
}

// trimEOL returns the line content without its trailing newline bytes,
// for analysis; emission always uses the raw line.
func trimEOL(line []byte) string {
	return strings.TrimRight(string(line), "\r\n")
}

// hasNewline reports whether the raw line ends with a newline.
func hasNewline(line []byte) bool {
	return len(line) > 0 && line[len(line)-1] == '\n'
}
