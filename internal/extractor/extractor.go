// Package extractor recovers JSON values embedded in free-form model output.
package extractor

import (
	"encoding/json"
	"strings"

	"leembo/internal/domain"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// Extract returns the JSON value contained in raw. The whole text is tried
// first, then balanced array spans, then balanced object spans.
func Extract(raw string) (json.RawMessage, error) {
	return extract(raw, '[', '{')
}

// ExtractObject is like Extract but prefers object spans over array spans.
func ExtractObject(raw string) (json.RawMessage, error) {
	return extract(raw, '{', '[')
}

func extract(raw string, first, second byte) (json.RawMessage, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil, &domain.ExtractionError{Reason: "empty response", Raw: raw}
	}
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}
	if !strings.ContainsAny(cleaned, "[{") {
		return nil, &domain.ExtractionError{Reason: "no JSON structure found", Raw: raw}
	}
	for _, open := range []byte{first, second} {
		if span, ok := findSpan(cleaned, open); ok {
			return json.RawMessage(span), nil
		}
	}
	return nil, &domain.ExtractionError{Reason: "no parseable JSON span found", Raw: raw}
}

// Clean strips reasoning blocks and markdown code fences around a response.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		start := strings.Index(s, thinkOpen)
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], thinkClose)
		if end == -1 {
			// unterminated reasoning block: everything after it is reasoning
			s = s[:start]
			break
		}
		s = s[:start] + s[start+end+len(thinkClose):]
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// findSpan tries every occurrence of open as a span start and returns the
// longest balanced span that is valid JSON, so a stray "[1]" citation in the
// prose does not shadow the payload. Ties go to the earliest span.
func findSpan(s string, open byte) (string, bool) {
	best := ""
	for i := 0; i < len(s); i++ {
		if s[i] != open {
			continue
		}
		end, ok := matchClose(s, i)
		if !ok {
			continue
		}
		candidate := s[i : end+1]
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if len(candidate) > len(best) {
			best = candidate
		}
		// spans nested inside an accepted one are always shorter
		i = end
	}
	return best, best != ""
}

// matchClose scans from the opening bracket at start and returns the index of
// its matching closer. Brackets inside string literals are ignored and
// mismatched nesting aborts the scan.
func matchClose(s string, start int) (int, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false
	for j := start; j < len(s); j++ {
		c := s[j]
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
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j, true
			}
		}
	}
	return 0, false
}
