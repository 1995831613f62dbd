package aoc

import (
	"fmt"
	"os"
	"path/filepath"
)

func readExample(dir string, day int, part string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, "examples", fmt.Sprintf("%02d-%s.txt", day, part)))
	return string(b), err
}

// ReadExample returns the example fixture for part of day, stored as
// dir/examples/DD-part.txt. It panics if the fixture can't be read.
func ReadExample(dir string, day int, part string) string {
	return MustGet(readExample(dir, day, part))
}
