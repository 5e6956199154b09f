// Package repair provides best-effort recovery of JSON from generative-model output.
package repair

import (
	"encoding/json"
	"strings"
)

// Repair extracts a JSON object from model output that may be wrapped in
// markdown code fences or truncated before its closing braces. It makes a
// single repair attempt: strip fences, locate the first object, append any
// missing closing braces, then verify the result parses. A text that still
// does not parse is returned as an *UnrepairableError rather than guessed at.
func Repair(text string) (json.RawMessage, error) {
	candidate := stripFences(text)

	start := strings.Index(candidate, "{")
	if start < 0 {
		return nil, &UnrepairableError{Input: text, Reason: "no JSON object found"}
	}
	candidate = candidate[start:]

	if end, open := scanObject(candidate); end > 0 {
		candidate = candidate[:end]
	} else {
		// Truncated output: close whatever the scan left open. The open
		// count comes from the same string-aware scan, so braces inside
		// string literals never skew it.
		candidate += strings.Repeat("}", open)
	}

	if !json.Valid([]byte(candidate)) {
		return nil, &UnrepairableError{Input: text, Reason: "not valid JSON after repair"}
	}
	return json.RawMessage(candidate), nil
}

// stripFences removes markdown code-fence wrappers. Models often emit
// ```json ... ``` even when instructed to return bare JSON.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// scanObject walks the object opened at position 0. When the object closes,
// end is the index just past its closing brace. When the text runs out while
// the object is still open, end is -1 and open is the number of braces that
// never closed. Braces inside string literals are ignored either way.
func scanObject(text string) (end, open int) {
	depth := 0
	inString := false
	escaped := false
	for i, r := range text {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return i + 1, 0
				}
			}
		}
	}
	return -1, depth
}
