package chart

import (
	"regexp"
	"strings"
)

// TargetPattern selects the chord-display convention the standardizer
// converges on.
type TargetPattern string

const (
	// PatternStandard canonicalizes casing only and keeps accidentals as written.
	PatternStandard TargetPattern = "standard"
	// PatternSharps rewrites flat roots to their sharp equivalents (Bb -> A#).
	PatternSharps TargetPattern = "sharps"
	// PatternFlats rewrites sharp roots to their flat equivalents (A# -> Bb).
	PatternFlats TargetPattern = "flats"
)

// ValidTargetPatterns enumerates all recognized target patterns.
var ValidTargetPatterns = []TargetPattern{PatternStandard, PatternSharps, PatternFlats}

// canonicalChord matches a chord token already in canonical form:
// uppercase root, optional accidental, optional quality, optional extension
// digits, optional slash bass.
var canonicalChord = regexp.MustCompile(`^[A-G][#b]?(?:maj|min|dim|aug|sus|add|m)?[0-9]*(?:/[A-G][#b]?)?$`)

// looseChord captures the parts of a token that is recognizable as a chord
// once re-cased, even if not canonical as written.
var looseChord = regexp.MustCompile(`^([A-Ga-g])([#b♯♭]?)([A-Za-z]*)([0-9]*)(?:/([A-Ga-g])([#b♯♭]?))?$`)

var sharpFor = map[string]string{
	"Ab": "G#", "Bb": "A#", "Cb": "B", "Db": "C#", "Eb": "D#", "Fb": "E", "Gb": "F#",
}

var flatFor = map[string]string{
	"A#": "Bb", "B#": "C", "C#": "Db", "D#": "Eb", "E#": "F", "F#": "Gb", "G#": "Ab",
}

var knownQualities = map[string]bool{
	"": true, "m": true, "maj": true, "min": true,
	"dim": true, "aug": true, "sus": true, "add": true,
}

// IsCanonical reports whether token matches the recognized chord grammar
// exactly as written.
func IsCanonical(token string) bool {
	return canonicalChord.MatchString(token)
}

// Canonicalize returns the canonical spelling of a chord token under the
// given target pattern, and whether the token is recognizable as a chord at
// all. Unrecognizable tokens are returned unchanged with ok = false; the
// caller treats them as opaque.
func Canonicalize(token string, pattern TargetPattern) (string, bool) {
	m := looseChord.FindStringSubmatch(token)
	if m == nil {
		return token, false
	}

	root := normalizeNote(m[1], m[2])
	quality := m[3]
	ext := m[4]

	// A single "m" after the root is the minor quality. A single "M" is
	// ambiguous (major by some conventions, a typo by others) and is left
	// opaque rather than guessed at. Multi-letter qualities are case-folded
	// and checked against the known set.
	switch {
	case quality == "M":
		return token, false
	case len(quality) > 1:
		quality = strings.ToLower(quality)
	}
	if !knownQualities[quality] {
		return token, false
	}

	bass := ""
	if m[5] != "" {
		bass = "/" + applyPattern(normalizeNote(m[5], m[6]), pattern)
	}

	return applyPattern(root, pattern) + quality + ext + bass, true
}

// normalizeNote upper-cases the note letter and folds unicode accidentals
// to their ASCII forms.
func normalizeNote(letter, accidental string) string {
	switch accidental {
	case "♯":
		accidental = "#"
	case "♭":
		accidental = "b"
	}
	return strings.ToUpper(letter) + accidental
}

func applyPattern(note string, pattern TargetPattern) string {
	switch pattern {
	case PatternSharps:
		if s, ok := sharpFor[note]; ok {
			return s
		}
	case PatternFlats:
		if f, ok := flatFor[note]; ok {
			return f
		}
	}
	return note
}
