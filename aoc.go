// Package aoc runs Advent of Code solutions, first against the example
// fixtures from the puzzle text and then against the real input.
// (forked from bradfitz/aoc)
package aoc

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "aoc",
})

// Part solves one part of a day's puzzle.
type Part struct {
	// Name picks the example fixture: part "pt1" of day 1 reads
	// examples/01-pt1.txt.
	Name string
	// Want is the answer to the example, compared against fmt.Sprint of
	// what Solve returns.
	Want  string
	Solve func(in *Input) any
}

// Puzzle is one day of a year and the solvers for its parts.
type Puzzle struct {
	Year int
	Day  int
	// Examples is the directory holding the examples/ fixtures,
	// relative to where the binary is run.
	Examples string
	Parts    []Part
}

// Input is the text handed to a Part.
type Input struct {
	text string
	// Example is set while solving an example fixture.
	Example bool
}

// Text returns the whole input.
func (in *Input) Text() string {
	return in.text
}

// ForLines calls onLine for each line of input.
func (in *Input) ForLines(onLine func(line string)) {
	for _, line := range Lines(in.text) {
		onLine(line)
	}
}

// Debug logs v at debug level, only for examples.
func (in *Input) Debug(v ...any) {
	if in.Example {
		logger.Debug(fmt.Sprint(v...))
	}
}

func (in *Input) fingerprint() string {
	return deephash.Hash(&in.text).String()[:12]
}

// Lines splits text on newlines. A trailing "\r" is dropped from each
// line and a final newline does not start another line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

type options struct {
	day         int
	part        string
	onlyExample bool
	skipExample bool
}

var (
	opts      options
	flagDebug bool
)

func init() {
	flag.IntVar(&opts.day, "day", -1, "day to run")
	flag.StringVar(&opts.part, "part", "", "part to run, e.g. pt1")
	flag.BoolVar(&opts.onlyExample, "example", false, "only run examples")
	flag.BoolVar(&opts.skipExample, "skip-example", false, "skip examples")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
})

// Run solves puzzles in day order and exits with status 1 if any
// example answer is wrong or an input can't be loaded.
func Run(puzzles ...Puzzle) {
	initFlags()
	if !run(os.Stdout, puzzles, opts, loadInput) {
		os.Exit(1)
	}
}

type loader func(year, day int) ([]byte, error)

func run(w io.Writer, puzzles []Puzzle, o options, load loader) bool {
	byDay := make(map[int]Puzzle, len(puzzles))
	for _, p := range puzzles {
		byDay[p.Day] = p
	}
	days := maps.Keys(byDay)
	slices.Sort(days)
	if o.day != -1 {
		if _, ok := byDay[o.day]; !ok {
			logger.Error("no such day", "day", o.day)
			return false
		}
		days = []int{o.day}
	}

	ok := true
	for _, d := range days {
		ok = solveDay(w, byDay[d], o, load) && ok
	}
	return ok
}

// solveDay stops at the first wrong example answer.
func solveDay(w io.Writer, p Puzzle, o options, load loader) bool {
	fmt.Fprintln(w, "Running day", p.Day)
	for _, part := range p.Parts {
		if o.part != "" && part.Name != o.part {
			continue
		}
		if !o.skipExample {
			text, err := readExample(p.Examples, p.Day, part.Name)
			if err != nil {
				logger.Error("reading example", "part", part.Name, "err", err)
				return false
			}
			got, took := solve(part, &Input{text: text, Example: true})
			if fmt.Sprint(got) != part.Want {
				fmt.Fprintf(w, "%s example: %v ❌; want %v\n", part.Name, got, part.Want)
				return false
			}
			fmt.Fprintf(w, "%s example: %v ✅ (%v)\n", part.Name, got, took)
		}
		if o.onlyExample {
			continue
		}
		text, err := load(p.Year, p.Day)
		if err != nil {
			logger.Error("loading input", "year", p.Year, "day", p.Day, "err", err)
			return false
		}
		got, took := solve(part, &Input{text: string(text)})
		fmt.Fprintf(w, "%s: %v (took %v)\n", part.Name, got, took)
	}
	return true
}

func solve(part Part, in *Input) (any, time.Duration) {
	logger.Debug("solving", "part", part.Name, "example", in.Example, "hash", in.fingerprint())
	t0 := time.Now()
	got := part.Solve(in)
	return got, time.Since(t0).Round(time.Microsecond)
}
