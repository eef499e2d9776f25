package vgr

import (
	"cmp"
	"slices"
)

// scanSegment is one chained quadratic segment of a path being scanned.
type scanSegment struct {
	cvs [3]Point
}

// scanEvent marks a y coordinate where a segment starts or stops spanning.
type scanEvent struct {
	y     float32
	seg   int32
	begin bool
}

// pathScanner buckets path segments by the y ranges they span and sweeps
// them top to bottom, yielding horizontal bands together with the segments
// active in each band. The fill pipeline emits one primitive per band
// carrying only that band's segments, so the shader's winding-number and
// distance queries touch a fraction of the path instead of all of it.
//
// The scanner's buffers are reused across paths to avoid per-call
// allocation.
type pathScanner struct {
	segs   []scanSegment
	events []scanEvent
	active []int32
	cursor int

	// y0, y1 bound the current band after a successful next.
	y0, y1 float32
}

// begin loads a chained quadratic path: segment k uses cvs[2k], cvs[2k+1],
// cvs[2k+2]. Horizontal segments never cross a scanline and are skipped.
func (sc *pathScanner) begin(cvs []Point) {
	sc.segs = sc.segs[:0]
	sc.events = sc.events[:0]
	sc.active = sc.active[:0]
	sc.cursor = 0

	for i := 0; i+2 < len(cvs); i += 2 {
		seg := scanSegment{cvs: [3]Point{cvs[i], cvs[i+1], cvs[i+2]}}
		ymin := min(seg.cvs[0].Y, seg.cvs[1].Y, seg.cvs[2].Y)
		ymax := max(seg.cvs[0].Y, seg.cvs[1].Y, seg.cvs[2].Y)
		if ymin == ymax {
			continue
		}
		idx := int32(len(sc.segs))
		sc.segs = append(sc.segs, seg)
		sc.events = append(sc.events,
			scanEvent{y: ymin, seg: idx, begin: true},
			scanEvent{y: ymax, seg: idx, begin: false},
		)
	}

	// Ends sort before begins at equal y so adjoining segments do not
	// produce zero-height bands.
	slices.SortFunc(sc.events, func(a, b scanEvent) int {
		if a.y != b.y {
			return cmp.Compare(a.y, b.y)
		}
		switch {
		case a.begin == b.begin:
			return 0
		case a.begin:
			return 1
		default:
			return -1
		}
	})
}

// next advances to the next band with at least one active segment. It
// returns false when the sweep is exhausted.
func (sc *pathScanner) next() bool {
	for sc.cursor < len(sc.events) {
		y := sc.events[sc.cursor].y
		for sc.cursor < len(sc.events) && sc.events[sc.cursor].y == y {
			ev := sc.events[sc.cursor]
			if ev.begin {
				sc.active = append(sc.active, ev.seg)
			} else {
				sc.deactivate(ev.seg)
			}
			sc.cursor++
		}
		if sc.cursor == len(sc.events) {
			return false
		}
		if len(sc.active) > 0 {
			sc.y0, sc.y1 = y, sc.events[sc.cursor].y
			return true
		}
	}
	return false
}

func (sc *pathScanner) deactivate(seg int32) {
	for i, s := range sc.active {
		if s == seg {
			sc.active[i] = sc.active[len(sc.active)-1]
			sc.active = sc.active[:len(sc.active)-1]
			return
		}
	}
}
