// The day01 command solves Advent of Code 2023 day 1, Trebuchet?!
// Run it from the repository root so the example fixtures are found.
package main

import (
	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/calibration"
)

func main() {
	aoc.Run(aoc.Puzzle{
		Year:     2023,
		Day:      1,
		Examples: "calibration/testdata",
		Parts: []aoc.Part{
			{Name: "pt1", Want: "142", Solve: partOne},
			{Name: "pt2", Want: "281", Solve: partTwo},
		},
	})
}

// PartOne and PartTwo always report ok; an input with no calibration
// values sums to 0.

func partOne(in *aoc.Input) any {
	v, _ := calibration.PartOne(in.Text())
	return v
}

func partTwo(in *aoc.Input) any {
	if in.Example {
		in.ForLines(func(line string) {
			v, _ := calibration.Value(line, calibration.WordCandidates)
			in.Debug(line, " => ", v)
		})
	}
	v, _ := calibration.PartTwo(in.Text())
	return v
}
