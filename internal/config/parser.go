package config

import "strings"

// Parse turns raw config lines into a key/value map. Blank lines and
// comments are skipped; values may be double-quoted and may carry inline
// comments.
func Parse(lines []string) map[string]string {
	cfg := make(map[string]string)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// A quoted value keeps everything between the quotes, including
		// any # characters.
		if strings.HasPrefix(value, "\"") {
			if end := strings.Index(value[1:], "\""); end >= 0 {
				cfg[key] = value[1 : end+1]
				continue
			}
		}

		// Strip inline comments from unquoted values.
		if idx := strings.Index(value, "#"); idx >= 0 {
			value = strings.TrimSpace(value[:idx])
		}

		cfg[key] = value
	}

	return cfg
}

// Set updates key in lines, preserving any inline comment, or appends it.
// Reports whether an existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			oldValue := parts[1]
			if commentIdx := strings.Index(oldValue, "#"); commentIdx >= 0 {
				comment := strings.TrimSpace(oldValue[commentIdx:])
				lines[i] = key + "=" + value + " " + comment
			} else {
				lines[i] = key + "=" + value
			}
			return lines, true
		}
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset removes key from lines. Reports whether a line was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			out = append(out, line)
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
