package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Sample is a published example for a day, taken from the doc comment
// of its solver:
//
//	/*
//	want=7,5
//
//	199
//	200
//	*/
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ParseSample parses a single comment. It reports false if the comment
// carries no want= line.
func ParseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// ExtractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input
// reuses the input of the previous sample in the file.
func ExtractSamples(filename string, src []byte) (map[string]Sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := ParseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples, nil
}

var dayFuncRx = regexp.MustCompile(`^Day(\d+)$`)

// SamplesByDay extracts the samples of every file in fsys matching
// pattern and keys them by day, taken from solver names of the form
// DayNN.
func SamplesByDay(fsys fs.FS, pattern string) (map[int]Sample, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	out := make(map[int]Sample)
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		samples, err := ExtractSamples(name, src)
		if err != nil {
			return nil, err
		}
		for fn, s := range samples {
			m := dayFuncRx.FindStringSubmatch(fn)
			if m == nil {
				continue
			}
			day, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%s: bad day in %s: %w", name, fn, err)
			}
			out[day] = s
		}
	}
	return out, nil
}
