// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

// parseSample parses a doc comment of the form
//
//	/*
//	want=42
//
//	input line 1
//	input line 2
//	*/
//
// The input is optional; a sample without input reuses the previous one.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	text = strings.TrimLeft(text, " \t\n")
	rest, ok := strings.CutPrefix(text, "want=")
	if !ok {
		var zero sample
		return zero, false
	}
	want, input, _ := strings.Cut(rest, "\n")
	// Only blank lines are dropped so that leading indentation of the
	// first input line survives.
	input = strings.TrimLeft(input, "\n")
	input = strings.TrimRight(input, " \t\n")
	if input != "" {
		input += "\n"
	}
	return sample{
		want:  strings.TrimSpace(want),
		input: input,
	}, true
}

func extractSamples(name string, src []byte, samples map[string][]sample) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		Logger().Fatalf("parsing %s to extract samples: %v", name, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[funcName] = append(samples[funcName], s)
			lastInput = s.input
		}
	}
}

// extractAllSamples parses every Go file in src and returns the samples
// keyed by function name.
func extractAllSamples(src fs.FS) map[string][]sample {
	samples := make(map[string][]sample)
	names := MustGet(fs.Glob(src, "*.go"))
	slices.Sort(names)
	for _, name := range names {
		extractSamples(name, MustGet(fs.ReadFile(src, name)), samples)
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string][]sample
	sample  int // index into samples[solver.Name] in SampleMode
}

func (p *Puzzle) Description() []byte {
	return fileOrFetch(p.path("html"), fmt.Sprintf("https://adventofcode.com/%d/day/%d", p.year, p.day.day))
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(p.path("input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) path(ext string) string {
	return filepath.Join(flagInputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.%s", p.day.day, ext))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		Logger().Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Blocks returns the input split into groups of lines separated by blank
// lines.
func (p *Puzzle) Blocks() [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	p.ForLines(func(line string) {
		if line == "" {
			if cur != nil {
				blocks = append(blocks, cur)
			}
			cur = nil
			return
		}
		cur = append(cur, line)
	})
	if cur != nil {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Grid returns the input as a grid of bytes.
func (p *Puzzle) Grid() Grid[byte] {
	var g Grid[byte]
	p.ForLines(func(line string) {
		if line != "" {
			g = append(g, []byte(line))
		}
	})
	return g
}

func (p *Puzzle) Debug(v ...any) {
	Logger().Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		Logger().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	samples := p.samples[p.solver.Name]
	if p.sample >= len(samples) {
		Logger().Fatalf("no sample %d found for %v", p.sample, p.solver.Name)
	}
	return samples[p.sample]
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	method int // index in the solver's method set
	Part   string
	Name   string
}

// call runs the part against slvr, a pointer to a struct embedding
// *Puzzle, after pointing its Puzzle field at p.
func (ps partSolver) call(slvr any, p *Puzzle) any {
	v := reflect.ValueOf(slvr).Elem()
	v.FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return v.Method(ps.method).Call(nil)[0].Interface()
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		Logger().Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			Logger().Fatalf("%s: got %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			method: i,
			Part:   part,
			Name:   mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input-dir", ".", "directory holding <year>/<day>.input files")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		logLevel.SetLevel(zap.DebugLevel)
	}
})

func runDay(slvr any, year int, day day, samples map[string][]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		if !flagSkipSample {
			if len(samples[ps.Name]) == 0 {
				fmt.Printf("part %s sample: none\n", ps.Part)
			}
			for i, sample := range samples[ps.Name] {
				p.SampleMode = true
				p.sample = i
				t0 := time.Now()
				got := ps.call(slvr, &p)
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
		if flagOnlySample {
			continue
		}
		p.SampleMode = false
		// Prime the input.
		p.Input()
		t0 := time.Now()
		got := ps.call(slvr, &p)
		fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
}

// Run runs the solver methods of slvr for year. src holds the Go files
// declaring the methods; their doc comments carry the samples.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	defer Logger().Sync()
	samples := extractAllSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			Logger().Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// SampleCase is one solver part paired with one of its samples.
type SampleCase struct {
	Name  string // method name, e.g. D17p2
	Index int    // sample index for the method
	Want  string

	run func() any
}

// Run runs the part in sample mode and returns its printed answer.
func (c SampleCase) Run() string {
	return fmt.Sprint(c.run())
}

// SampleCases returns a case for every sample of every solver part in
// slvr, ordered by day, part and sample. Each case runs against its own
// copy of the solver.
func SampleCases(year int, src fs.FS, slvr any) []SampleCase {
	samples := extractAllSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var out []SampleCase
	for _, d := range dayNums {
		for _, ps := range days[d].parts {
			for i, s := range samples[ps.Name] {
				p := &Puzzle{
					year:       year,
					day:        days[d],
					SampleMode: true,
					solver:     ps,
					samples:    samples,
					sample:     i,
				}
				ps := ps
				out = append(out, SampleCase{
					Name:  ps.Name,
					Index: i,
					Want:  s.want,
					run: func() any {
						rv := reflect.New(reflect.TypeOf(slvr).Elem())
						rv.Elem().Set(reflect.ValueOf(slvr).Elem())
						return ps.call(rv.Interface(), p)
					},
				})
			}
		}
	}
	return out
}

var session = sync.OnceValue[string](func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		Logger().Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	Logger().Infow("fetching", "url", url, "cache", filename)
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. It is fatal if s lacks prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		Logger().Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Cut is strings.Cut that is fatal if sep is missing.
func Cut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		Logger().Fatalf("missing %q in %q", sep, s)
	}
	return before, after
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
