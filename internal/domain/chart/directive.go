package chart

import (
	"strings"

	"github.com/fatih/camelcase"
)

// Well-known directive keys after normalization.
const (
	DirectiveTitle  = "title"
	DirectiveArtist = "artist"
	DirectiveKey    = "key"
	DirectiveTempo  = "tempo"
	DirectiveCapo   = "capo"
	DirectiveTime   = "time"
)

// directiveAliases maps normalized spellings to their canonical directive key.
// Covers the ChordPro short forms and common camelCase variants.
var directiveAliases = map[string]string{
	"title":          DirectiveTitle,
	"t":              DirectiveTitle,
	"song title":     DirectiveTitle,
	"artist":         DirectiveArtist,
	"subtitle":       DirectiveArtist,
	"st":             DirectiveArtist,
	"by":             DirectiveArtist,
	"key":            DirectiveKey,
	"song key":       DirectiveKey,
	"tempo":          DirectiveTempo,
	"bpm":            DirectiveTempo,
	"capo":           DirectiveCapo,
	"time":           DirectiveTime,
	"time signature": DirectiveTime,
}

// collapsedAliases indexes the alias table by its space-free spellings, so
// "songtitle" resolves the same way "song title" does.
var collapsedAliases = func() map[string]string {
	m := make(map[string]string, len(directiveAliases))
	for k, v := range directiveAliases {
		m[strings.ReplaceAll(k, " ", "")] = v
	}
	return m
}()

// NormalizeDirectiveKey folds a raw directive keyword to its canonical form.
// CamelCase keys are split into words first, so "SongTitle" and "songtitle"
// both normalize to "title". Unknown keys are returned lower-cased so the
// parser still records them.
func NormalizeDirectiveKey(raw string) string {
	words := camelcase.Split(strings.TrimSpace(raw))
	joined := strings.ToLower(strings.Join(words, " "))
	joined = strings.Join(strings.FieldsFunc(joined, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), " ")

	if canonical, ok := directiveAliases[joined]; ok {
		return canonical
	}
	// Also try the fully collapsed form ("songtitle" -> "song title").
	if canonical, ok := collapsedAliases[strings.ReplaceAll(joined, " ", "")]; ok {
		return canonical
	}
	return joined
}
