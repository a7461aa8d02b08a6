package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadDotEnv applies KEY=VALUE pairs from a dotenv file to the process
// environment. A missing file is not an error and variables that are
// already set are left alone.
func loadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open dotenv: %w", err)
	}
	defer f.Close()

	values, err := parseDotEnv(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for k, v := range values {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

// parseDotEnv reads dotenv lines. Blank lines and # comments are skipped,
// an "export " prefix is accepted, and one layer of matching quotes is
// stripped from values. Lines without "=" are ignored.
func parseDotEnv(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		values[k] = unquote(strings.TrimSpace(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if first, last := v[0], v[len(v)-1]; first == last && (first == '"' || first == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
