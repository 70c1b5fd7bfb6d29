// Package text provides text direction detection for selections.
//
// The outline engine's anchor-point placement depends on whether the
// selected text runs left-to-right or right-to-left. This package derives
// that flag from the selected string itself using the Unicode bidirectional
// classes from golang.org/x/text/unicode/bidi:
//
//   - LTR - left-to-right (Latin, Cyrillic, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - no strong directional characters (numbers, punctuation)
//
// The [DetectDirection] function analyzes text to determine its dominant
// direction by counting strong directional characters.
package text
