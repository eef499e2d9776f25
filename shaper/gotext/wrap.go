package gotext

import "unicode"

// breakAfter reports whether a line may break after this rune
// (simplified UAX #14: spaces, hyphens, zero-width space).
func breakAfter(r rune) bool {
	switch r {
	case ' ', '\t', '\u200B':
		return true
	case '-', '‐', '‑', '–', '—':
		return true
	}
	return false
}

// isCJK reports whether the rune is a CJK character that allows breaking on
// either side.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// canBreakBetween reports whether a line may break between two adjacent
// runes.
func canBreakBetween(prev, cur rune) bool {
	return breakAfter(prev) || isCJK(prev) || isCJK(cur)
}

// runeAt returns the rune at a glyph's cluster index, or 0 when the index is
// out of range (can happen with synthesized glyphs).
func runeAt(runes []rune, cluster int) rune {
	if cluster < 0 || cluster >= len(runes) {
		return 0
	}
	return runes[cluster]
}

// wrapLines splits a shaped line into wrapped lines no wider than width,
// returned as [start, end) glyph index pairs. Breaks happen at word
// boundaries when one exists inside the width, otherwise at the overflowing
// glyph (character fallback for long words). Spaces at a break are consumed.
func wrapLines(runes []rune, glyphs []glyphInfo, width float32) [][2]int {
	var lines [][2]int
	start := 0
	lastBreak := -1

	for i := 0; i < len(glyphs); i++ {
		g := glyphs[i]
		if i > start {
			prev := runeAt(runes, glyphs[i-1].cluster)
			cur := runeAt(runes, g.cluster)
			if canBreakBetween(prev, cur) {
				lastBreak = i
			}
		}

		lineW := g.x + g.advance - glyphs[start].x
		if width > 0 && lineW > width && i > start {
			br := lastBreak
			if br <= start {
				br = i
			}
			lines = append(lines, [2]int{start, br})

			start = br
			for start < len(glyphs) && unicode.IsSpace(runeAt(runes, glyphs[start].cluster)) {
				start++
			}
			lastBreak = -1
			// Resume scanning from the new line's first glyph.
			i = start - 1
		}
	}

	if start < len(glyphs) {
		lines = append(lines, [2]int{start, len(glyphs)})
	}
	if len(lines) == 0 {
		lines = [][2]int{{0, len(glyphs)}}
	}
	return lines
}
