// Package input provides domain list loading for scan runs
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDomains reads candidate domains from a file, truncated to limit
// (limit <= 0 means no cap).
//
// Supported formats:
// - Ranked CSV (top-1m style): rank,domain
// - Plain list: one domain per line
// - Comments (lines starting with #) and blank lines are ignored
//
// Scheme prefixes (http://, https://) are stripped so URL lists work too.
func LoadDomains(path string, limit int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var domains []string
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		domain, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if domain == "" {
			continue
		}

		domains = append(domains, domain)
		if limit > 0 && len(domains) >= limit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if len(domains) == 0 {
		return nil, fmt.Errorf("no domains found in %s", path)
	}

	return domains, nil
}

// parseLine extracts the domain from a single input line
func parseLine(line string) (string, error) {
	domain := line

	// Ranked CSV rows look like "1,example.com"; the domain is the second field
	if strings.Contains(line, ",") {
		reader := csv.NewReader(strings.NewReader(line))
		record, err := reader.Read()
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("invalid CSV row %q: %w", line, err)
		}
		if len(record) >= 2 {
			domain = record[1]
		} else if len(record) == 1 {
			domain = record[0]
		}
	}

	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimSuffix(domain, "/")

	return domain, nil
}
