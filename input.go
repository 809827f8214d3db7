package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// InputPath returns the conventional input file for day under dir,
// e.g. inputs/day04.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d", day))
}

// ReadLines reads the file at path and splits it into lines.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return SplitLines(b)
}

// SplitLines splits b on \n or \r\n. A trailing newline does not
// produce an empty last line.
func SplitLines(b []byte) ([]string, error) {
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ForLinesY calls onLine for each line. The y value is the row number,
// starting with 0.
func ForLinesY(lines []string, onLine func(y int, line string)) {
	for y, line := range lines {
		onLine(y, line)
	}
}
