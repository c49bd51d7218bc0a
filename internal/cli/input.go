package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// readLines reads one label per line from path, trimming whitespace
// and skipping blank lines and #-comments.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: read %q: %w", path, err)
	}

	return lines, nil
}
