package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
// It is used to detect and handle bidirectional text (bidi) in selections.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// IsRTL reports whether the direction is right-to-left. It maps directly
// onto the outline engine's RTL configuration flag; Neutral text is treated
// as left-to-right.
func (d Direction) IsRTL() bool {
	return d == RTL
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode bidirectional character classes. It counts strong
// directional characters (class L versus R and AL) and returns the direction
// with the higher count, or Neutral if no strong directional characters are
// present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for len(text) > 0 {
		props, size := bidi.LookupString(text)
		switch props.Class() {
		case bidi.L:
			ltrCount++
		case bidi.R, bidi.AL:
			rtlCount++
		}
		text = text[size:]
	}

	// If no strong directional characters, it's neutral
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}

	// Return the dominant direction
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// GetCharDirection returns the inherent direction of a single Unicode
// character: RTL for strong right-to-left classes (R, AL), LTR for strong
// left-to-right (L), and Neutral for everything else (digits, punctuation,
// whitespace, symbols).
func GetCharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}
