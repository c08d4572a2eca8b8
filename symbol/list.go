// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

// A List is a list of symbol sizes ordered by preference.
// Filters return a new List and leave the receiver alone.
type List []Size

// All sizes ordered by data capacity, ties broken in favour of
// squarer symbols.
var all = List{
	Square10, Square12, Rect8x18, Square14, Rect8x32,
	Square16, Rect12x26, Square18, Rect8x48, Square20,
	Rect12x36, Rect8x64, Square22, Rect16x36, Rect8x80,
	Square24, Rect8x96, Rect12x64, Square26, Rect20x36,
	Rect16x48, Rect8x120, Rect20x44, Square32, Rect16x64,
	Rect8x144, Rect12x88, Rect26x40, Rect22x48, Rect24x48,
	Rect20x64, Square36, Rect26x48, Rect24x64, Square40,
	Rect26x64, Square44, Square48, Square52, Square64,
	Square72, Square80, Square88, Square96, Square104,
	Square120, Square132, Square144,
}

// All returns all 48 sizes, ordered by data capacity; between sizes
// of equal capacity the squarer one comes first.
func All() List {
	return append(List(nil), all...)
}

// Standard returns the sizes of ISO/IEC 16022 in capacity order,
// leaving out the rectangular extensions, which not all decoders
// recognize.
func Standard() List {
	return all.keep(func(s Size) bool { return !s.IsDMRE() })
}

func (l List) keep(f func(Size) bool) List {
	var out List
	for _, s := range l {
		if f(s) {
			out = append(out, s)
		}
	}
	return out
}

// Squares returns the square sizes of l.
func (l List) Squares() List {
	return l.keep(Size.IsSquare)
}

// Rectangles returns the rectangular sizes of l.
func (l List) Rectangles() List {
	return l.keep(func(s Size) bool { return !s.IsSquare() })
}

// WidthIn returns the sizes of l between min and max modules wide,
// inclusive.
func (l List) WidthIn(min, max int) List {
	return l.keep(func(s Size) bool {
		return s.Width() >= min && s.Width() <= max
	})
}

// HeightIn returns the sizes of l between min and max modules tall,
// inclusive.
func (l List) HeightIn(min, max int) List {
	return l.keep(func(s Size) bool {
		return s.Height() >= min && s.Height() <= max
	})
}

// Contains reports whether l contains s.
func (l List) Contains(s Size) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Smallest returns the first size in l with capacity for n data
// codewords.  On a capacity-ordered list this is the smallest fitting
// symbol.
func (l List) Smallest(n int) (Size, bool) {
	for _, s := range l {
		if s.DataCodewords() >= n {
			return s, true
		}
	}
	return 0, false
}
