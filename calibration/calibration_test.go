package calibration

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2023"
)

func TestValue(t *testing.T) {
	tests := []struct {
		line   string
		cands  Candidates
		want   int
		wantOK bool
	}{
		{"1abc2", DigitCandidates, 12, true},
		{"pqr3stu8vwx", DigitCandidates, 38, true},
		{"a1b2c3d4e5f", DigitCandidates, 15, true},
		{"treb7uchet", DigitCandidates, 77, true},
		{"5", DigitCandidates, 55, true},
		{"abc", DigitCandidates, 0, false},
		{"", DigitCandidates, 0, false},
		{"0zero0", WordCandidates, 0, false},
		{"two1nine", DigitCandidates, 11, true},
		{"two1nine", WordCandidates, 29, true},
		{"eightwothree", WordCandidates, 83, true},
		{"eightwothree", DigitCandidates, 0, false},
		{"abcone2threexyz", WordCandidates, 13, true},
		{"xtwone3four", WordCandidates, 24, true},
		{"4nineeightseven2", WordCandidates, 42, true},
		{"zoneight234", WordCandidates, 14, true},
		{"7pqrstsixteen", WordCandidates, 76, true},
		{"twone", WordCandidates, 21, true},
		{"oneight", WordCandidates, 18, true},
		{"sevenine", WordCandidates, 79, true},
	}
	for _, tt := range tests {
		got, ok := Value(tt.line, tt.cands)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Value(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindTieBreak(t *testing.T) {
	cands := Candidates{"on", "one"}
	if got, _ := cands.find("xone", forward); got != "on" {
		t.Errorf("find forward = %q; want %q", got, "on")
	}
	if got, _ := cands.find("onex", backward); got != "on" {
		t.Errorf("find backward = %q; want %q", got, "on")
	}
}

func TestDigitOf(t *testing.T) {
	for _, c := range conversions {
		if got := digitOf(c.word); got != c.digit {
			t.Errorf("digitOf(%q) = %c; want %c", c.word, got, c.digit)
		}
		if got := digitOf(string(c.digit)); got != c.digit {
			t.Errorf("digitOf(%q) = %c; want %c", c.digit, got, c.digit)
		}
	}
}

func TestDigitOfPanics(t *testing.T) {
	for _, tok := range []string{"twone", "x", "", "11"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("digitOf(%q) did not panic", tok)
				}
			}()
			digitOf(tok)
		}()
	}
}

func TestCandidatesCovered(t *testing.T) {
	for _, cands := range []Candidates{DigitCandidates, WordCandidates} {
		for _, tok := range cands {
			if d := digitOf(tok); d == '0' {
				t.Errorf("digitOf(%q) = 0", tok)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		cands Candidates
		want  []int
	}{
		{"empty", "", DigitCandidates, []int{}},
		{"no-match", "abc\ndef\n", DigitCandidates, []int{}},
		{"skips", "a1\nnone\n\n2b3\n", DigitCandidates, []int{11, 23}},
		{"no-trailing-newline", "1\n2", DigitCandidates, []int{11, 22}},
		{"crlf", "1x2\r\nthree\r\n", WordCandidates, []int{12, 33}},
		{"lone-match", "5\nab7cd\nsix", WordCandidates, []int{55, 77, 66}},
		{"long-line", "1" + strings.Repeat("x", 70000) + "2\n3\n", DigitCandidates, []int{12, 33}},
		{"pt1", aoc.ReadExample("testdata", 1, "pt1"), DigitCandidates, []int{12, 38, 15, 77}},
		{"pt2", aoc.ReadExample("testdata", 1, "pt2"), WordCandidates, []int{29, 83, 13, 24, 42, 14, 76}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.cands)
			if got == nil {
				t.Fatal("Parse returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
			if again := Parse(tt.text, tt.cands); !cmp.Equal(got, again) {
				t.Errorf("Parse not repeatable: %v then %v", got, again)
			}
		})
	}
}

func TestParts(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) (int, bool)
		text string
		want int
	}{
		{"PartOne", PartOne, aoc.ReadExample("testdata", 1, "pt1"), 142},
		{"PartTwo", PartTwo, aoc.ReadExample("testdata", 1, "pt2"), 281},
		{"PartOne/empty", PartOne, "", 0},
		{"PartTwo/empty", PartTwo, "", 0},
		{"PartOne/no-match", PartOne, "abc\nxyz", 0},
		{"PartTwo/lone", PartTwo, "5", 55},
		{"PartOne/long-line", PartOne, "1" + strings.Repeat("x", 70000) + "2\n3\n", 45},
	}
	for _, tt := range tests {
		got, ok := tt.fn(tt.text)
		if !ok || got != tt.want {
			t.Errorf("%s = %v, %v; want %v, true", tt.name, got, ok, tt.want)
		}
	}
}
