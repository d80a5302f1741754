package generation

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

var fencedBlockRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// ExtractJSONPayload pulls the JSON document out of a raw model reply.
// Preference order: fenced code block, then the widest {...} slice, then the
// trimmed text as-is.
func ExtractJSONPayload(rawText string) string {
	trimmed := strings.TrimSpace(rawText)

	if match := fencedBlockRe.FindStringSubmatch(trimmed); match != nil && match[1] != "" {
		return strings.TrimSpace(match[1])
	}

	firstBrace := strings.Index(trimmed, "{")
	lastBrace := strings.LastIndex(trimmed, "}")
	if firstBrace != -1 && lastBrace > firstBrace {
		return strings.TrimSpace(trimmed[firstBrace : lastBrace+1])
	}

	return trimmed
}

// RepairJSON rewrites the most common ways models mangle JSON: single-quoted
// strings, unquoted object keys, trailing commas, Python-style literals and
// // line comments. Best effort only; the caller falls back to the input when
// the result still does not parse.
func RepairJSON(input string) (string, bool) {
	repaired := repairTokens(input)
	if !json.Valid([]byte(repaired)) {
		return input, false
	}
	return repaired, true
}

func repairTokens(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	runes := []rune(input)
	inString := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inString {
			out.WriteRune(c)
			if c == '\\' && i+1 < len(runes) {
				i++
				out.WriteRune(runes[i])
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out.WriteRune(c)

		case c == '\'':
			// single-quoted string: rewrite to double quotes
			out.WriteRune('"')
			for i++; i < len(runes); i++ {
				if runes[i] == '\\' && i+1 < len(runes) {
					out.WriteRune(runes[i])
					i++
					out.WriteRune(runes[i])
					continue
				}
				if runes[i] == '\'' {
					break
				}
				if runes[i] == '"' {
					out.WriteString(`\"`)
					continue
				}
				out.WriteRune(runes[i])
			}
			out.WriteRune('"')

		case c == ',':
			// trailing comma before a closing bracket
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) && (runes[j] == '}' || runes[j] == ']') {
				continue
			}
			out.WriteRune(c)

		case c == '/' && i+1 < len(runes) && runes[i+1] == '/':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			if i < len(runes) {
				out.WriteRune('\n')
			}

		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			i = j - 1

			switch word {
			case "True":
				out.WriteString("true")
			case "False":
				out.WriteString("false")
			case "None", "NaN", "undefined":
				out.WriteString("null")
			default:
				// bare object key?
				k := j
				for k < len(runes) && unicode.IsSpace(runes[k]) {
					k++
				}
				if k < len(runes) && runes[k] == ':' {
					out.WriteRune('"')
					out.WriteString(word)
					out.WriteRune('"')
				} else {
					out.WriteString(word)
				}
			}

		default:
			out.WriteRune(c)
		}
	}

	return out.String()
}
