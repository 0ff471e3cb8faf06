package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadSearchURLs loads the newline-delimited search URL list. Blank lines
// are skipped. A missing file yields an empty list, not an error — that
// case is reported to the user by the caller.
func ReadSearchURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return urls, nil
}
