package shared

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// envFileVariable names an explicit .env path that bypasses discovery.
const envFileVariable = "AVATAR_ENV_FILE"

var dotenvLoadOnce sync.Once

// loadDotEnvIfPresent loads AVATAR_ENV_FILE, or else the nearest .env found
// walking up from the working directory and then from this source file.
// It runs at most once per process.
func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		if explicit := strings.TrimSpace(os.Getenv(envFileVariable)); explicit != "" {
			loadDotEnvFile(explicit)
			return
		}

		roots := make([]string, 0, 2)
		if cwd, err := os.Getwd(); err == nil {
			roots = append(roots, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			roots = append(roots, filepath.Dir(currentFile))
		}

		for _, root := range roots {
			if path, found := findDotEnv(root); found {
				loadDotEnvFile(path)
				return
			}
		}
	})
}

func findDotEnv(start string) (string, bool) {
	for current := start; ; current = filepath.Dir(current) {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		if filepath.Dir(current) == current {
			return "", false
		}
	}
}

// loadDotEnvFile sets KEY=value pairs from path without overriding variables
// already present in the environment. It reports whether anything was set.
func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if os.Setenv(key, value) == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func parseDotEnvLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || !isValidEnvKey(key) {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if quote := value[0]; (quote == '"' || quote == '\'') && value[len(value)-1] == quote {
		return value[1 : len(value)-1]
	}
	return value
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		switch {
		case character == '_',
			character >= 'A' && character <= 'Z',
			character >= 'a' && character <= 'z',
			index > 0 && character >= '0' && character <= '9':
		default:
			return false
		}
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
