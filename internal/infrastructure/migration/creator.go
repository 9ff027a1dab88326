package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	upTemplate = `-- Migration: %s
-- Created: %s

`
	downTemplate = `-- Rollback: %s
-- Created: %s

`
)

var nameSanitizer = regexp.MustCompile(`[^a-z0-9_]+`)

// CreateMigration writes an empty up/down migration file pair into dir,
// named with the current timestamp, and returns both paths.
func CreateMigration(dir, name string) (upPath, downPath string, err error) {
	sanitized := sanitizeName(name)
	if sanitized == "" {
		return "", "", fmt.Errorf("invalid migration name %q", name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create migrations directory: %w", err)
	}

	now := time.Now().UTC()
	version := now.Format("20060102150405")

	upPath = filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", version, sanitized))
	downPath = filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", version, sanitized))

	created := now.Format(time.RFC3339)
	if err := os.WriteFile(upPath, []byte(fmt.Sprintf(upTemplate, sanitized, created)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write up migration: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(fmt.Sprintf(downTemplate, sanitized, created)), 0o644); err != nil {
		os.Remove(upPath)
		return "", "", fmt.Errorf("failed to write down migration: %w", err)
	}

	return upPath, downPath, nil
}

// ListMigrations returns the migration file names in dir, sorted by version
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func sanitizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = nameSanitizer.ReplaceAllString(s, "")
	return strings.Trim(s, "_")
}
