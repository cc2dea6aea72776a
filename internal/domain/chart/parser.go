package chart

import (
	"regexp"
	"strings"
)

// directiveLine matches "{key}" and "{key: value}" forms.
var directiveLine = regexp.MustCompile(`^\{\s*([^{}:]+?)\s*(?::([^{}]*))?\}$`)

// Parse tokenizes raw chart text into classified lines. It is a total
// function: malformed input degrades to a best-effort classification and
// never produces an error. Line numbers are 1-based and stable for the
// lifetime of the parse.
func Parse(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lines = append(lines, classify(r, i+1))
	}
	return lines
}

func classify(raw string, number int) Line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Line{Kind: KindBlank, Raw: raw, Number: number}
	}

	if m := directiveLine.FindStringSubmatch(trimmed); m != nil {
		return Line{
			Kind:   KindDirective,
			Raw:    raw,
			Number: number,
			Key:    NormalizeDirectiveKey(m[1]),
			Value:  strings.TrimSpace(m[2]),
		}
	}

	if name, ok := sectionName(trimmed); ok {
		return Line{Kind: KindSectionHeader, Raw: raw, Number: number, Section: name}
	}

	line := Line{Kind: KindChordLyric, Raw: raw, Number: number}
	line.Chords, line.Lyric = extractChords(raw)
	return line
}

// sectionName reports whether the trimmed line is a single bracket pair
// with nothing outside it, e.g. "[Chorus]".
func sectionName(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return "", false
	}
	inner := trimmed[1 : len(trimmed)-1]
	if inner == "" || strings.ContainsAny(inner, "[]") {
		return "", false
	}
	return strings.TrimSpace(inner), true
}

// extractChords splits a chord-lyric line into chord tokens and the
// de-chorded lyric text. Each token is anchored at the character offset in
// the lyric at which it would visually align. Unmatched or nested brackets
// are kept as literal lyric text; the extractor under-detects rather than
// failing.
func extractChords(raw string) ([]ChordPosition, string) {
	var (
		chords []ChordPosition
		lyric  []rune
	)

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '[' {
			lyric = append(lyric, runes[i])
			continue
		}

		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '[' {
				break // nested open bracket: treat the first as literal
			}
			if runes[j] == ']' {
				end = j
				break
			}
		}
		if end == -1 || end == i+1 {
			// Unmatched "[" or empty "[]" is literal text.
			lyric = append(lyric, runes[i])
			continue
		}

		chords = append(chords, ChordPosition{
			Token:  string(runes[i+1 : end]),
			Offset: len(lyric),
		})
		i = end
	}

	return chords, string(lyric)
}
