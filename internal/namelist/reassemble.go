package namelist

import (
	"bufio"
	"io"
	"strings"
)

// continuationIndex is the column inspected by IsContinuation. The namelist
// writer indents records by one space, so a wrapped line shows its
// continuation character in the second column.
const continuationIndex = 1

// IsContinuation reports whether a physical line continues the previous
// logical line: a comma, space or single quote at continuationIndex.
// Lines too short to have that column never continue.
func IsContinuation(line string) bool {
	if len(line) <= continuationIndex {
		return false
	}
	switch line[continuationIndex] {
	case ',', ' ', '\'':
		return true
	}
	return false
}

// Reassemble reads all physical lines from r and joins continuation lines
// onto their predecessor. Blank lines are dropped.
func Reassemble(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(lines) > 0 && IsContinuation(line) {
			lines[len(lines)-1] += line
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
