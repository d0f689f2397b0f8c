package cmd

import (
	"fmt"
	"strings"
)

// Tokenize splits a command line into tokens, handling quotes and backslash
// escapes. A quoted empty string ('' or "") yields an empty token, which is
// how the root marker is spelled for the join command.
func Tokenize(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var tokens []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false // current token saw a quote; emit it even when empty

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		quoted = false
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			current.WriteByte(ch)
			escaped = false
			continue
		}

		if ch == '\\' && !inSingle {
			escaped = true
			continue
		}

		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			quoted = true
			continue
		}

		if ch == '"' && !inSingle {
			inDouble = !inDouble
			quoted = true
			continue
		}

		if inSingle || inDouble {
			current.WriteByte(ch)
			continue
		}

		if ch == ' ' || ch == '\t' {
			flush()
			continue
		}

		current.WriteByte(ch)
	}

	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quote")
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash")
	}

	flush()
	return tokens, nil
}
