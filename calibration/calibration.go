// Package calibration recovers trebuchet calibration values from lines
// of text: the first and last digit on a line, read as a two-digit
// number.
package calibration

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

// Candidates is an ordered set of tokens that may spell a digit. When
// two tokens start at the same offset the one listed first wins.
type Candidates []string

var (
	// DigitCandidates matches the digit characters 1 through 9.
	DigitCandidates = Candidates{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

	// WordCandidates additionally matches the spelled-out words one
	// through nine.
	WordCandidates = Candidates{
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"1", "2", "3", "4", "5", "6", "7", "8", "9",
	}
)

// conversions maps tokens to digits. zero is listed but no Candidates
// include it, so 0 is never produced.
var conversions = [...]struct {
	word  string
	digit byte
}{
	{"zero", '0'},
	{"one", '1'},
	{"two", '2'},
	{"three", '3'},
	{"four", '4'},
	{"five", '5'},
	{"six", '6'},
	{"seven", '7'},
	{"eight", '8'},
	{"nine", '9'},
}

// digitOf returns the digit character for tok. The lookup goes by
// containment in table order, which is only correct when tok is exactly
// one word or one digit; anything else panics.
func digitOf(tok string) byte {
	for _, c := range conversions {
		if !strings.Contains(tok, c.word) && strings.IndexByte(tok, c.digit) < 0 {
			continue
		}
		if tok != c.word && tok != string(c.digit) {
			panic(fmt.Sprintf("calibration: %q is not a single digit token", tok))
		}
		return c.digit
	}
	panic(fmt.Sprintf("calibration: no digit for token %q", tok))
}

type direction int

const (
	forward direction = iota
	backward
)

// find returns the candidate starting at the first offset of line that
// any candidate starts at, walking from the start or from the end.
func (c Candidates) find(line string, dir direction) (string, bool) {
	start, end, step := 0, len(line), 1
	if dir == backward {
		start, end, step = len(line)-1, -1, -1
	}
	for i := start; i != end; i += step {
		for _, tok := range c {
			if strings.HasPrefix(line[i:], tok) {
				return tok, true
			}
		}
	}
	return "", false
}

// Value returns the calibration value of line: the digit of the first
// matching token followed by the digit of the last one. A line with a
// single match uses it twice. It reports false if nothing matches.
func Value(line string, cands Candidates) (int, bool) {
	first, ok := cands.find(line, forward)
	if !ok {
		return 0, false
	}
	last, ok := cands.find(line, backward)
	if !ok {
		return 0, false
	}
	return aoc.MustGet(strconv.Atoi(string([]byte{digitOf(first), digitOf(last)}))), true
}

// Parse returns the calibration values of each line of text, skipping
// lines with no match. The result is never nil.
func Parse(text string, cands Candidates) []int {
	values := []int{}
	for _, line := range aoc.Lines(text) {
		if v, ok := Value(line, cands); ok {
			values = append(values, v)
		}
	}
	return values
}

// PartOne sums the calibration values of text counting digits only.
func PartOne(text string) (int, bool) {
	return sum(Parse(text, DigitCandidates))
}

// PartTwo sums the calibration values of text counting both digits and
// spelled-out digits.
func PartTwo(text string) (int, bool) {
	return sum(Parse(text, WordCandidates))
}

func sum(values []int) (int, bool) {
	if values == nil {
		return 0, false
	}
	return aoc.Sum(values...), true
}
