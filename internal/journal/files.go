package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Journal filenames carry their creation timestamp in one of two
// layouts: a compact two-digit-year form and an ISO-8601 form with
// four-digit year. Alpha and Beta builds prefix their own tag.
var (
	journalPattern = regexp.MustCompile(`^Journal(Alpha|Beta)?\.[0-9]{2,4}-?[0-9]{2}-?[0-9]{2}T?[0-9]{2}[0-9]{2}[0-9]{2}\.[0-9]{2}\.log$`)
	compactStamp   = regexp.MustCompile(`^Journal(Alpha|Beta)?\.([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{2})\.([0-9]{2})\.log$`)
	isoStamp       = regexp.MustCompile(`^Journal(Alpha|Beta)?\.([0-9]{4})-([0-9]{2})-([0-9]{2})T([0-9]{2})([0-9]{2})([0-9]{2})\.([0-9]{2})\.log$`)
)

// discoverJournals lists the journal files in dir in chronological
// order. Files whose names carry no parseable timestamp sort by
// modification time.
func discoverJournals(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !journalPattern.MatchString(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Slice(files, func(i, j int) bool {
		ti, tj := journalTime(files[i]), journalTime(files[j])
		if ti.Equal(tj) {
			// Same second: the trailing part number decides.
			return files[i] < files[j]
		}
		return ti.Before(tj)
	})
	return files, nil
}

func journalTime(path string) time.Time {
	name := filepath.Base(path)
	if m := compactStamp.FindStringSubmatch(name); m != nil {
		return stampTime(2000+digits(m[2]), m[3:8])
	}
	if m := isoStamp.FindStringSubmatch(name); m != nil {
		return stampTime(digits(m[2]), m[3:8])
	}
	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}

func stampTime(year int, parts []string) time.Time {
	return time.Date(year, time.Month(digits(parts[0])), digits(parts[1]),
		digits(parts[2]), digits(parts[3]), digits(parts[4]), 0, time.UTC)
}

func digits(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
