package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned by ExtractJSON when the text holds no JSON object.
var ErrNoJSON = errors.New("no JSON object in response")

// ExtractJSON pulls a JSON object out of free-form model output. It tries,
// in order: a ```json fence, any ``` fence, then the first balanced
// {...} span. Reasoning blocks (<think>...</think>) are skipped.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = stripThink(text)

	for _, open := range []string{"```json", "```"} {
		if body, ok := fenced(text, open); ok && json.Valid([]byte(body)) {
			return json.RawMessage(body), nil
		}
	}

	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := matchBrace(text, start); end > 0 {
			span := text[start : end+1]
			if json.Valid([]byte(span)) {
				return json.RawMessage(span), nil
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, ErrNoJSON
}

func stripThink(text string) string {
	for {
		i := strings.Index(text, "<think>")
		if i < 0 {
			return text
		}
		j := strings.Index(text[i:], "</think>")
		if j < 0 {
			return text[:i]
		}
		text = text[:i] + text[i+j+len("</think>"):]
	}
}

func fenced(text, open string) (string, bool) {
	i := strings.Index(text, open)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(open):]
	j := strings.Index(rest, "```")
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}

// matchBrace returns the index of the brace closing the one at start, or
// -1. String literals are skipped so braces inside them do not count.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
