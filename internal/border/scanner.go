package border

// scanState is the state of the edge scanner: which run the walk is
// currently inside. The scan starts before any pixel has been seen and
// must immediately enter a marker run; once it has passed into the
// transparent interior it may never see a marker again.
type scanState int

const (
	scanStart scanState = iota // no pixel seen yet
	scanYellow                 // inside the leading yellow run
	scanPink                   // inside the leading pink run
	scanAfter                  // past the marker block, transparent from here on
)

// scanEdge reduces one classified edge strip to the two marker colors'
// semantic widths.
//
// The strip is ordered outermost pixel first. Rules, enforced as an
// explicit state machine:
//
//   - fewer than 3 pixels: no border (a bordered image is at least 3
//     pixels along each scanned axis)
//   - the first pixel must be a marker color; a leading transparent pixel
//     means no border
//   - the two marker colors may not abut: a direct yellow to pink or pink
//     to yellow transition is invalid
//   - once a transparent pixel has been seen, any later marker pixel is
//     invalid (the marker block must be contiguous at the strip's start)
//   - an Other pixel anywhere means no border at all
//
// Each color's width is the index of the last pixel of its leading run,
// so an N-pixel marker run yields a width of N-1. Widths are clamped to
// len(strip)-2, the largest value that still leaves one interior pixel
// and one opposite-border pixel.
//
// ok is false when the strip does not form a valid border edge.
func scanEdge(strip []PixelClass) (yellowWidth, pinkWidth int, ok bool) {
	if len(strip) < 3 {
		return 0, 0, false
	}

	state := scanStart
	for i, class := range strip {
		if class == PixelOther {
			return 0, 0, false
		}

		switch state {
		case scanStart:
			switch class {
			case PixelYellow:
				state = scanYellow
				yellowWidth = i
			case PixelPink:
				state = scanPink
				pinkWidth = i
			case PixelTransparent:
				return 0, 0, false
			}
		case scanYellow:
			switch class {
			case PixelYellow:
				yellowWidth = i
			case PixelPink:
				// colors may not abut
				return 0, 0, false
			case PixelTransparent:
				state = scanAfter
			}
		case scanPink:
			switch class {
			case PixelPink:
				pinkWidth = i
			case PixelYellow:
				return 0, 0, false
			case PixelTransparent:
				state = scanAfter
			}
		case scanAfter:
			if class != PixelTransparent {
				return 0, 0, false
			}
		}
	}

	maxWidth := len(strip) - 2
	if yellowWidth > maxWidth {
		yellowWidth = maxWidth
	}
	if pinkWidth > maxWidth {
		pinkWidth = maxWidth
	}
	return yellowWidth, pinkWidth, true
}
