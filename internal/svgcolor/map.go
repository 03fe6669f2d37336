package svgcolor

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ReplaceOptions configures strictness of color substitution.
type ReplaceOptions struct {
	// AllInputColors requires every key of the mapping to occur in the
	// document at least once.
	AllInputColors bool

	// AllSVGColors requires every non-reserved color found in the
	// document to be covered by the mapping.
	AllSVGColors bool

	// IncludeAlpha enables recognition of alpha-carrying literals
	// (#RRGGBBAA, rgba()).
	IncludeAlpha bool
}

// Replace rewrites every color literal in text through the mapping and
// returns the new document. Text outside recognized literals is preserved
// byte for byte.
//
// The reserved marker colors are never remapped; they are re-emitted in
// canonical rgb() form so the renderer always sees them exactly. Mapped
// and unmapped colors are likewise re-emitted in functional form.
//
// With AllInputColors set, mapping keys that never occurred make Replace
// fail; with AllSVGColors set, document colors without a mapping do. Both
// errors name the offending colors.
func Replace(text string, mapping map[Color]Color, opts ReplaceOptions) (string, error) {
	segs, err := Scan(text, opts.IncludeAlpha)
	if err != nil {
		return "", err
	}

	unusedKeys := make(map[Color]bool, len(mapping))
	for k := range mapping {
		unusedKeys[k] = true
	}
	var unmapped []Color
	seenUnmapped := make(map[Color]bool)

	var out strings.Builder
	out.Grow(len(text))
	for _, seg := range segs {
		if seg.Color == nil {
			out.WriteString(seg.Literal)
			continue
		}
		c := *seg.Color

		switch {
		case c.IsReserved():
			out.WriteString(c.RGBString())
		case has(mapping, c):
			delete(unusedKeys, c)
			out.WriteString(mapping[c].RGBString())
		default:
			if opts.AllSVGColors && !seenUnmapped[c] {
				seenUnmapped[c] = true
				unmapped = append(unmapped, c)
			}
			out.WriteString(c.RGBString())
		}
	}

	if opts.AllInputColors && len(unusedKeys) > 0 {
		return "", fmt.Errorf("failed to map colors %s: colors not found in svg", colorList(keys(unusedKeys)))
	}
	if len(unmapped) > 0 {
		return "", fmt.Errorf("failed to map colors %s: colors have no mapping", colorList(unmapped))
	}
	return out.String(), nil
}

func has(m map[Color]Color, c Color) bool {
	_, ok := m[c]
	return ok
}

func keys(m map[Color]bool) []Color {
	out := make([]Color, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

// colorList formats colors for error messages in a stable order.
func colorList(colors []Color) string {
	strs := make([]string, len(colors))
	for i, c := range colors {
		strs[i] = c.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, ", ")
}

// Colors returns the set of distinct color literals in one document.
func Colors(text string, includeAlpha bool) (map[Color]bool, error) {
	segs, err := Scan(text, includeAlpha)
	if err != nil {
		return nil, err
	}
	found := make(map[Color]bool)
	for _, seg := range segs {
		if seg.Color != nil {
			found[*seg.Color] = true
		}
	}
	return found, nil
}

// ColorCount is one inventory entry: a color and the number of documents
// it occurred in.
type ColorCount struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Inventory orders per-document color sets into a single listing, most
// frequent first; ties are broken by hue so related colors group
// together in the output.
func Inventory(perDocument []map[Color]bool) []ColorCount {
	counts := make(map[Color]int)
	for _, doc := range perDocument {
		for c := range doc {
			counts[c]++
		}
	}

	out := make([]ColorCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, ColorCount{Color: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		hi, _, _ := toColorful(out[i].Color).Hsv()
		hj, _, _ := toColorful(out[j].Color).Hsv()
		if hi != hj {
			return hi < hj
		}
		return out[i].Color.String() < out[j].Color.String()
	})
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
