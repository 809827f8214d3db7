package aoc

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1,2

some-input
*/`,
			want: Sample{
				Want: "1,2",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234,5

multi-line-input
other-line
other-line-2
*/`,
			want: Sample{
				Want: "1234,5",
				Input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
want=7,0

first

 second after a blank line
*/`,
			want: Sample{
				Want: "7,0",
				Input: `first

 second after a blank line
`,
			},
		},
		{
			comment: `// want=3,4`,
			want:    Sample{Want: "3,4"},
		},
	}

	for _, tt := range tests {
		if got, ok := ParseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}
}

func TestParseSampleNoWant(t *testing.T) {
	if s, ok := ParseSample("// Day01 counts things."); ok {
		t.Errorf("ParseSample = %+v, true; want false", s)
	}
}

const sampleSrc = `package y

/*
want=3,0

1
2
*/
func Day01(lines []string) (int, int) { return 0, 0 }

// want=5,5
func Day02(lines []string) (int, int) { return 0, 0 }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := ExtractSamples("y.go", []byte(sampleSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Sample{
		"Day01": {Want: "3,0", Input: "1\n2\n"},
		"Day02": {Want: "5,5", Input: "1\n2\n"}, // reuses the previous input
	}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d: %+v", len(got), len(want), got)
	}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("sample %s = %+v, want %+v", name, got[name], w)
		}
	}
}

func TestSamplesByDay(t *testing.T) {
	fsys := fstest.MapFS{
		"day01.go":      {Data: []byte(sampleSrc)},
		"day01_test.go": {Data: []byte("package y\n\n// want=9,9\nfunc Day07() {}\n")},
	}
	got, err := SamplesByDay(fsys, "day0?.go")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got days %v, want 1 and 2", got)
	}
	if got[1].Want != "3,0" || got[2].Want != "5,5" {
		t.Errorf("SamplesByDay = %+v", got)
	}
}

func TestExtractSamplesBadSource(t *testing.T) {
	if _, err := ExtractSamples("bad.go", []byte("package")); err == nil {
		t.Error("ExtractSamples of invalid Go succeeded")
	}
}

func sumCount(lines []string) (int, int) {
	return Sum(Ints(lines...)...), len(lines)
}

func TestDaysLookup(t *testing.T) {
	days := Days{1: sumCount}
	if _, err := days.Lookup(1); err != nil {
		t.Errorf("Lookup(1): %v", err)
	}
	for _, day := range []int{0, 2, 25} {
		s, err := days.Lookup(day)
		if !errors.Is(err, ErrNoSolver) {
			t.Errorf("Lookup(%d) error = %v; want ErrNoSolver", day, err)
		}
		if s != nil {
			t.Errorf("Lookup(%d) fell back to a solver", day)
		}
	}
}

func TestDaysSorted(t *testing.T) {
	days := Days{9: sumCount, 1: sumCount, 4: sumCount}
	if got, want := days.Sorted(), []int{1, 4, 9}; !slices.Equal(got, want) {
		t.Errorf("Sorted = %v, want %v", got, want)
	}
}

func TestRunnerSolve(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day03"), []byte("1\n2\n3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := &Runner{Days: Days{3: sumCount}, InputDir: dir}

	got, err := r.Solve(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Result{Day: 3, Part1: 6, Part2: 3}); got != want {
		t.Errorf("Solve(3) = %+v, want %+v", got, want)
	}

	again, err := r.Solve(3)
	if err != nil || again != got {
		t.Errorf("second Solve(3) = %+v, %v; want %+v", again, err, got)
	}
}

func TestRunnerSolveErrors(t *testing.T) {
	r := &Runner{Days: Days{3: sumCount}, InputDir: t.TempDir()}

	if _, err := r.Solve(4); !errors.Is(err, ErrNoSolver) {
		t.Errorf("Solve(4) error = %v; want ErrNoSolver", err)
	}
	if _, err := r.Solve(3); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Solve(3) with no input error = %v; want not exist", err)
	}
}

func TestRunnerSolveSample(t *testing.T) {
	r := &Runner{
		Days: Days{1: sumCount},
		Samples: map[int]Sample{
			1: {Want: "3,2", Input: "1\n2\n"},
		},
	}
	got, err := r.SolveSample(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "3,2" {
		t.Errorf("SolveSample(1) = %v", got)
	}

	r.Samples[1] = Sample{Want: "4,2", Input: "1\n2\n"}
	if _, err := r.SolveSample(1); err == nil {
		t.Error("SolveSample with wrong want succeeded")
	}

	delete(r.Samples, 1)
	if _, err := r.SolveSample(1); !errors.Is(err, ErrNoSample) {
		t.Errorf("SolveSample without sample error = %v; want ErrNoSample", err)
	}
}
