package chart

// LineKind classifies a single line of a chord chart.
type LineKind int

const (
	KindBlank LineKind = iota
	KindDirective
	KindSectionHeader
	KindChordLyric
)

func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindDirective:
		return "directive"
	case KindSectionHeader:
		return "section_header"
	case KindChordLyric:
		return "chord_lyric"
	default:
		return "unknown"
	}
}

// ChordPosition anchors a chord token to a character offset in the
// de-chorded lyric text of its line.
type ChordPosition struct {
	Token  string `json:"token"`
	Offset int    `json:"offset"`
}

// Line is one classified line of a chart. Number is 1-based and assigned
// once at parse time; downstream issue records always reference these
// original numbers, even after fixes insert or remove lines.
type Line struct {
	Kind   LineKind `json:"kind"`
	Raw    string   `json:"raw"`
	Number int      `json:"number"`

	// Directive lines only. Key is normalized (see NormalizeDirectiveKey);
	// Value is trimmed and may be empty for valueless directives.
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`

	// SectionHeader lines only.
	Section string `json:"section,omitempty"`

	// ChordLyric lines only.
	Chords []ChordPosition `json:"chords,omitempty"`
	Lyric  string          `json:"lyric,omitempty"`
}
