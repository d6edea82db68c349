package aoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/mock/gomock"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=???`,
			want: sample{
				want: "???",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) nums() []int {
	return MustGet(ParseLines(s.InputPath(), strconv.Atoi))
}

func (s testSolver) D1p1() any {
	return Sum(s.nums()...)
}

func (s testSolver) D1p2() any {
	return slices.Max(s.nums())
}

const testSource = `package main

/*
want=6

1
2
3
*/
func (s testSolver) D1p1() any { return nil }

// want=3
func (s testSolver) D1p2() any { return nil }
`

func testFS(src string) fstest.MapFS {
	return fstest.MapFS{
		"solver.go":      {Data: []byte(src)},
		"solver_test.go": {Data: []byte("package main\n\n// want=99\nfunc (s testSolver) D1p1() any { return nil }\n")},
		"README.md":      {Data: []byte("want=1\n")},
	}
}

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples(testFS(testSource))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "6", input: "1\n2\n3\n"},
		"D1p2": {want: "3", input: "1\n2\n3\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("sample %s = %+v, want %+v", k, got[k], v)
		}
	}
}

func TestExtractSamplesBadSource(t *testing.T) {
	if _, err := extractSamples(fstest.MapFS{"x.go": {Data: []byte("package")}}); err == nil {
		t.Error("extractSamples succeeded on invalid Go source")
	}
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() int { return 1 }

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	d, ok := days[1]
	if !ok || len(days) != 1 {
		t.Fatalf("extractMethods = %v, want only day 1", days)
	}
	var names []string
	for _, p := range d.parts {
		names = append(names, p.Name)
	}
	if want := []string{"D1p1", "D1p2"}; !slices.Equal(names, want) {
		t.Errorf("parts = %v, want %v", names, want)
	}

	if _, err := extractMethods(&badSolver{}); err == nil {
		t.Error("extractMethods accepted a part with the wrong signature")
	}
	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods accepted a non-pointer")
	}
}

func testOptions(t *testing.T) (options, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(envInputDir, dir)
	t.Setenv(envSessionFile, "")
	t.Setenv(envSession, "")
	return options{day: -1, config: filepath.Join(dir, "aoc.yaml")}, dir
}

func TestRun(t *testing.T) {
	o, dir := testOptions(t)
	ctrl := gomock.NewController(t)
	f := NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any(), "https://adventofcode.com/2025/day/1/input").Return([]byte("10\n20\n"), nil).Times(1)
	o.fetcher = f

	var out bytes.Buffer
	if err := run(&out, 2025, testFS(testSource), &testSolver{}, o); err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}
	for _, want := range []string{
		"Running day 1",
		"part 1 sample: 6 ✅",
		"part 1: 30 ",
		"part 2 sample: 3 ✅",
		"part 2: 20 ",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, "2025", "1.input"))
	if err != nil || string(b) != "10\n20\n" {
		t.Errorf("cached input = %q, %v", b, err)
	}
}

func TestRunSampleMismatch(t *testing.T) {
	o, _ := testOptions(t)
	o.onlySample = true
	o.fetcher = NewMockFetcher(gomock.NewController(t))

	var out bytes.Buffer
	src := strings.Replace(testSource, "want=6", "want=7", 1)
	err := run(&out, 2025, testFS(src), &testSolver{}, o)
	if !errors.Is(err, errSampleMismatch) {
		t.Fatalf("run error = %v, want %v", err, errSampleMismatch)
	}
	if !strings.Contains(out.String(), "part 1: 6 ❌; want 7") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunFetchError(t *testing.T) {
	o, _ := testOptions(t)
	o.skipSample = true
	o.part = "2"
	ctrl := gomock.NewController(t)
	f := NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	o.fetcher = f

	err := run(&bytes.Buffer{}, 2025, testFS(testSource), &testSolver{}, o)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("run error = %v, want fetch failure", err)
	}
}

func TestRunUnknownDay(t *testing.T) {
	o, _ := testOptions(t)
	o.day = 9
	if err := run(&bytes.Buffer{}, 2025, testFS(testSource), &testSolver{}, o); err == nil {
		t.Error("run succeeded for a day with no solver")
	}
}

func TestCallPartRecovers(t *testing.T) {
	_, err := callPart(partSolver{Part: "1", fn: func() any { panic("kaput") }})
	if err == nil || !strings.Contains(err.Error(), "kaput") {
		t.Errorf("callPart error = %v", err)
	}
}

func TestCommandFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envInputDir, dir)
	cmd := NewCommand(2025, testFS(testSource), &testSolver{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--day", "1", "--part", "1", "--sample", "--config", filepath.Join(dir, "none.yaml")})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.Contains(got, "part 1 sample: 6 ✅") || strings.Contains(got, "part 2") {
		t.Errorf("output = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "2025", "1.D1p1.sample")); err != nil {
		t.Errorf("sample file not written: %v", err)
	}
}
