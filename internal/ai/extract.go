package ai

import (
	"errors"
	"strings"
)

var ErrNoJSONObject = errors.New("no json object in model output")

// ExtractJSON strips markdown code fences and returns the outermost {...} block.
func ExtractJSON(content string) (string, error) {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		// drop the opening fence line, ```json or bare ```
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}

	return s[start : end+1], nil
}
