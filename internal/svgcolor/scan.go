package svgcolor

import (
	"fmt"
	"strings"
)

// Segment is one piece of a scanned document: either a run of plain text
// or a single recognized color literal. Concatenating every segment's
// Literal reproduces the input exactly.
type Segment struct {
	// Literal is the raw text of the segment as it appears in the input.
	Literal string

	// Color is non-nil when the segment is a color literal.
	Color *Color
}

// Scan splits document text into plain-text and color-literal segments in
// a single pass.
//
// Recognized literals are #RRGGBB, rgb(r,g,b) and, when includeAlpha is
// set, #RRGGBBAA and rgba(r,g,b,a). Functional components are decimal
// 0-255 with optional spaces inside the parentheses.
//
// A '#' that is not followed by a well-formed hex literal is ordinary
// text. An "rgb(" or "rgba(" prefix, however, commits: malformed contents
// after it are a document error, since silently passing a mangled literal
// through to the renderer would hide the problem in the output pixels.
func Scan(text string, includeAlpha bool) ([]Segment, error) {
	var segs []Segment
	plainStart := 0
	i := 0

	emit := func(n int, c Color) {
		if plainStart < i {
			segs = append(segs, Segment{Literal: text[plainStart:i]})
		}
		segs = append(segs, Segment{Literal: text[i : i+n], Color: &c})
		i += n
		plainStart = i
	}

	for i < len(text) {
		switch {
		case text[i] == '#':
			if c, n, ok := scanHex(text[i:], includeAlpha); ok {
				emit(n, c)
				continue
			}

		case atWordStart(text, i) && strings.HasPrefix(text[i:], "rgba("):
			if includeAlpha {
				c, n, err := scanFunctional(text[i:], true)
				if err != nil {
					return nil, fmt.Errorf("offset %d: %w", i, err)
				}
				emit(n, c)
				continue
			}
			// Without alpha parsing an rgba() literal is opaque text;
			// skip past the prefix so its inner "gb(..." can't match.
			i += len("rgba(")
			continue

		case atWordStart(text, i) && strings.HasPrefix(text[i:], "rgb("):
			c, n, err := scanFunctional(text[i:], false)
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			emit(n, c)
			continue
		}
		i++
	}

	if plainStart < len(text) {
		segs = append(segs, Segment{Literal: text[plainStart:]})
	}
	return segs, nil
}

// atWordStart reports whether position i does not continue an identifier,
// so "rgb(" inside "srgb(" is not mistaken for a literal.
func atWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	p := text[i-1]
	return !(p >= 'a' && p <= 'z' || p >= 'A' && p <= 'Z' || p >= '0' && p <= '9' || p == '_' || p == '-')
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexVal(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// scanHex recognizes a hex literal at the start of s (which begins with
// '#'). Only exact 6-digit runs, or 8-digit runs when alpha parsing is
// enabled, are literals; any other run length is plain text.
func scanHex(s string, includeAlpha bool) (c Color, n int, ok bool) {
	digits := 0
	for 1+digits < len(s) && isHexDigit(s[1+digits]) {
		digits++
	}

	pair := func(i int) uint8 {
		return hexVal(s[1+i])<<4 | hexVal(s[2+i])
	}
	switch {
	case digits == 6:
		return RGB(pair(0), pair(2), pair(4)), 7, true
	case digits == 8 && includeAlpha:
		return RGBA(pair(0), pair(2), pair(4), pair(6)), 9, true
	default:
		return Color{}, 0, false
	}
}

// scanFunctional recognizes an rgb()/rgba() literal at the start of s.
// The prefix has already matched, so failures here are errors.
func scanFunctional(s string, withAlpha bool) (c Color, n int, err error) {
	want := 3
	i := len("rgb(")
	if withAlpha {
		want = 4
		i = len("rgba(")
	}

	var vals [4]uint8
	for k := 0; k < want; k++ {
		if k > 0 {
			if i >= len(s) || s[i] != ',' {
				return Color{}, 0, fmt.Errorf("malformed color literal: expected ','")
			}
			i++
		}
		v, rest, verr := scanComponent(s[i:])
		if verr != nil {
			return Color{}, 0, fmt.Errorf("malformed color literal: %w", verr)
		}
		vals[k] = v
		i += rest
	}
	if i >= len(s) || s[i] != ')' {
		return Color{}, 0, fmt.Errorf("malformed color literal: expected ')'")
	}
	i++

	if withAlpha {
		return RGBA(vals[0], vals[1], vals[2], vals[3]), i, nil
	}
	return RGB(vals[0], vals[1], vals[2]), i, nil
}

// scanComponent reads space* digits space* and returns the value and the
// number of bytes consumed.
func scanComponent(s string) (uint8, int, error) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	v := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		if v > 255 {
			return 0, 0, fmt.Errorf("component value out of range")
		}
		i++
	}
	if i == start {
		return 0, 0, fmt.Errorf("expected component value")
	}
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return uint8(v), i, nil
}
