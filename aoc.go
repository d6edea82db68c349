// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks solutions against the samples in their doc
// comments, an input loader, and a few grid and math helpers.
package aoc

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the samples from the doc comments of every
// non-test .go file in src. A want= without input reuses the input of the
// previous sample in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					if s.input == "" {
						s.input = lastInput
					}
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
		return nil
	})
	return samples, err
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	cfg     *Config
	fetcher Fetcher
}

// InputPath returns the path of the input file for the part being run: the
// sample in sample mode, otherwise the real input, fetched on first use.
// It panics if the file can't be prepared.
func (p *Puzzle) InputPath() string {
	return MustGet(p.inputPath(context.Background()))
}

func (p *Puzzle) inputPath(ctx context.Context) (string, error) {
	if p.SampleMode {
		s, err := p.sample()
		if err != nil {
			return "", err
		}
		name := p.cfg.sampleFile(p.year, p.day.day, p.solver.Name)
		if err := writeFile(name, []byte(s.input)); err != nil {
			return "", fmt.Errorf("writing sample: %w", err)
		}
		return name, nil
	}
	name := p.cfg.inputFile(p.year, p.day.day)
	if err := fileOrFetch(ctx, p.fetcher, name, p.cfg.inputURL(p.year, p.day.day)); err != nil {
		return "", err
	}
	return name, nil
}

// Debugf logs at debug level while running samples.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		log.Debug().Str("part", p.solver.Name).Msgf(format, args...)
	}
}

func (p *Puzzle) sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return sample{}, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return s, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	config     string

	fetcher Fetcher // if nil, an HTTP fetcher using the configured session
}

var errSampleMismatch = errors.New("sample answer mismatch")

// callPart runs ps, turning a panic into an error.
func callPart(ps partSolver) (got any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("part %s: %v", ps.Part, r)
		}
	}()
	return ps.fn(), nil
}

func runDay(w io.Writer, slvr any, p *Puzzle, o options) error {
	fmt.Fprintln(w, "Running day", p.day.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range p.day.parts {
		p.solver = ps
		if o.part != "" && ps.Part != o.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && o.onlySample {
				continue
			} else if sm && o.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				if _, err := p.inputPath(context.Background()); err != nil {
					return err
				}
			}
			t0 := time.Now()
			got, err := callPart(ps)
			if err != nil {
				return err
			}
			if sm {
				s, err := p.sample()
				if err != nil {
					return err
				}
				if fmt.Sprint(got) != s.want {
					fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return fmt.Errorf("day %d part %s: %w", p.day.day, ps.Part, errSampleMismatch)
				}
				fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

func run(w io.Writer, year int, src fs.FS, slvr any, o options) error {
	if o.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	cfg, err := LoadConfig(o.config)
	if err != nil {
		return err
	}
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	fetcher := o.fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(cfg.Session)
	}
	newPuzzle := func(d day) *Puzzle {
		return &Puzzle{
			year:    year,
			day:     d,
			samples: samples,
			cfg:     cfg,
			fetcher: fetcher,
		}
	}

	if o.day != -1 {
		d, ok := days[o.day]
		if !ok {
			return fmt.Errorf("no day %d", o.day)
		}
		return runDay(w, slvr, newPuzzle(d), o)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, d := range dayNums {
		if err := runDay(w, slvr, newPuzzle(days[d]), o); err != nil {
			log.Error().Err(err).Int("day", d).Msg("day failed")
			errs = append(errs, err)
		}
		fmt.Fprintln(w)
	}
	return errors.Join(errs...)
}

// NewCommand returns the command that runs the solutions on slvr, a pointer
// to a struct embedding *Puzzle with methods named D{day}p{part}. src holds
// the solver's source, from which the samples are read.
func NewCommand(year int, src fs.FS, slvr any) *cobra.Command {
	o := options{}
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Run Advent of Code %d solutions", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), year, src, slvr, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.day, "day", -1, "day to run")
	f.StringVar(&o.part, "part", "", "part to run")
	f.BoolVar(&o.onlySample, "sample", false, "only run sample")
	f.BoolVar(&o.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&o.debug, "debug", false, "debug mode")
	f.StringVar(&o.config, "config", "aoc.yaml", "config file")
	return cmd
}

// Run runs the solutions on slvr as a command line program.
func Run(year int, src fs.FS, slvr any) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if err := NewCommand(year, src, slvr).Execute(); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
