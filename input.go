package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// loadInput returns the puzzle input for day, downloading it into
// <year>/<day>.input on first use.
func loadInput(year, day int) ([]byte, error) {
	name := filepath.Join(fmt.Sprint(year), fmt.Sprintf("%d.input", day))
	if b, err := os.ReadFile(name); err == nil {
		return b, nil
	}
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day)
	logger.Debug("fetching", "url", url)
	b, err := download(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0700); err != nil {
		return nil, err
	}
	return b, os.WriteFile(name, b, 0644)
}

var session = sync.OnceValues(func() (string, error) {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	return strings.TrimSpace(string(b)), err
})

func download(url string) ([]byte, error) {
	cookie, err := session()
	if err != nil {
		return nil, fmt.Errorf("reading session cookie: %w", err)
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
