// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement implements ECC200 module placement, the mapping
// between codeword bits and modules in the data region of a Data
// Matrix symbol, as defined in ISO/IEC 16022 Annex F.
//
// The data region is the symbol without its finder pattern, alignment
// patterns and quiet zone.  A Map labels every module of a data region
// with a bit of a codeword, or with a fixed colour in the four corner
// modules left over on some shapes.  Encode writes a codeword stream
// into a Grid of module colours, Decode reads it back.  The package
// knows nothing about what the codewords mean: text encodation and
// Reed-Solomon error correction happen in other layers.
package placement // import "github.com/unixdj/datamatrix/placement"

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// A Shape is the size of a symbol's data region in modules.
type Shape struct {
	Rows, Cols int
}

func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// ok reports whether the shape passes the cheap validity check.
// Shapes with odd or too small dimensions never have a placement.
// The converse does not hold: the corner layouts of some even shapes
// collide with the sweep, which build detects.
func (s Shape) ok() bool {
	return s.Rows >= 6 && s.Cols >= 6 && s.Rows&1 == 0 && s.Cols&1 == 0
}

// A ShapeError reports a data region shape that has no placement.
type ShapeError Shape

func (e ShapeError) Error() string {
	if !Shape(e).ok() {
		return "datamatrix: invalid data region " + Shape(e).String()
	}
	return "datamatrix: no placement for data region " + Shape(e).String()
}

// A Kind classifies a module position.  The zero Kind marks a module
// not labelled yet; it never appears in a finished Map.
type Kind uint8

const (
	unset Kind = iota
	Data              // the module carries bit Bit of codeword Codeword
	Fixed             // the module has the constant colour Dark
)

// A Cell is the label of a single module position.
type Cell struct {
	Kind     Kind
	Dark     bool // Fixed: the module colour
	Bit      int  // Data: bit number 1 to 8, 1 is the most significant
	Codeword int  // Data: codeword number, counted from 1
}

// A Map is the placement of codeword bits within a data region of a
// given shape.  It is immutable once built and safe for concurrent
// use.
type Map struct {
	shape Shape
	ncw   int    // codewords placed
	cells []Cell // Rows*Cols cells in row-major order
}

// Shape returns the data region shape the map was built for.
func (m *Map) Shape() Shape { return m.shape }

// Codewords returns the number of codewords the map places, data and
// error correction together.
func (m *Map) Codewords() int { return m.ncw }

// At returns the label of the module at (row, col), counted from the
// top left.
func (m *Map) At(row, col int) Cell {
	return m.cells[row*m.shape.Cols+col]
}

// Padded reports whether the map has the fixed corner pattern.  The
// sweep leaves the bottom right 2x2 block unassigned on shapes whose
// area is not a multiple of 8; the block is pinned to dark on its main
// diagonal and light off it.
func (m *Map) Padded() bool {
	return m.cells[len(m.cells)-1].Kind == Fixed
}

// Built maps, keyed by shape.  Readers load the current map snapshot
// without locking; builders replace it under mapLock.
var (
	mapp    atomic.Pointer[map[Shape]*Map]
	mapLock sync.Mutex
)

func init() {
	mapp.Store(new(map[Shape]*Map))
}

// New returns the placement map for a data region of the given shape,
// building it on first use.  Maps are cached for the lifetime of the
// process: calls with equal shapes return the same Map.  If the shape
// has no placement, New returns a ShapeError.
func New(sh Shape) (*Map, error) {
	if m := (*mapp.Load())[sh]; m != nil {
		return m, nil
	}
	if !sh.ok() {
		return nil, ShapeError(sh)
	}
	mapLock.Lock()
	defer mapLock.Unlock()
	old := *mapp.Load()
	if m := old[sh]; m != nil {
		return m, nil
	}
	m := build(sh)
	if m == nil {
		return nil, ShapeError(sh)
	}
	maps := make(map[Shape]*Map, len(old)+1)
	for k, v := range old {
		maps[k] = v
	}
	maps[sh] = m
	mapp.Store(&maps)
	return m, nil
}

// A builder labels the cells of a Map.  Labelling out of bounds or
// labelling a cell twice marks the builder bad; a bad build yields no
// Map.
type builder struct {
	Map
	bad bool
}

// build runs the placement algorithm for a shape that passed the
// cheap check, returning nil if no placement exists.
func build(sh Shape) *Map {
	b := builder{Map: Map{
		shape: sh,
		cells: make([]Cell, sh.Rows*sh.Cols),
	}}
	b.sweep()
	b.pad()
	if b.bad || !b.verify() {
		return nil
	}
	return &b.Map
}

// place labels the module at (row, col) with one bit of a codeword.
// Coordinates outside the region wrap around: rows above the top wrap
// to the bottom and columns left of the edge wrap to the right, each
// shifting the other coordinate by a shape-dependent amount, and rows
// pushed past the bottom by that shift wrap back to the top.  The last
// rule only fires on some wide rectangles.
func (b *builder) place(row, col, codeword, bit int) {
	h, w := b.shape.Rows, b.shape.Cols
	if row < 0 {
		row += h
		col += 4 - (h+4)%8
	}
	if col < 0 {
		col += w
		row += 4 - (w+4)%8
	}
	if row >= h {
		row -= h
	}
	if row < 0 || row >= h || col < 0 || col >= w {
		b.bad = true
		return
	}
	c := &b.cells[row*w+col]
	if c.Kind != unset {
		b.bad = true
		return
	}
	*c = Cell{Kind: Data, Bit: bit, Codeword: codeword}
}

// utah places the eight bits of one codeword in the L-shaped
// arrangement with its lower right module at (row, col).
func (b *builder) utah(row, col, codeword int) {
	b.place(row-2, col-2, codeword, 1)
	b.place(row-2, col-1, codeword, 2)
	b.place(row-1, col-2, codeword, 3)
	b.place(row-1, col-1, codeword, 4)
	b.place(row-1, col, codeword, 5)
	b.place(row, col-2, codeword, 6)
	b.place(row, col-1, codeword, 7)
	b.place(row, col, codeword, 8)
}

// Corner layouts, bits 1 to 8.  Unlike utahs they sit at the region's
// extreme edges and never wrap; a negative coordinate counts from the
// bottom or right edge, so {-1, 0} is the bottom left corner.
var corners = [4][8][2]int{
	{{-1, 0}, {-1, 1}, {-1, 2}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -4}, {0, -3}, {0, -2}, {0, -1}, {1, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-1, 0}, {-1, -1}, {0, -3}, {0, -2}, {0, -1}, {1, -3}, {1, -2}, {1, -1}},
}

// corner places the eight bits of one codeword in corner layout n.
func (b *builder) corner(n, codeword int) {
	for i, p := range &corners[n-1] {
		row, col := p[0], p[1]
		if row < 0 {
			row += b.shape.Rows
		}
		if col < 0 {
			col += b.shape.Cols
		}
		b.place(row, col, codeword, i+1)
	}
}

// cornerAt returns the corner layout triggered with the sweep at
// (row, col) on a region of shape sh, or 0.  The trigger positions
// are mutually exclusive: layouts 2 and 3 share one, but their column
// conditions cannot hold together.
func cornerAt(sh Shape, row, col int) int {
	switch {
	case col == 0 && row == sh.Rows:
		return 1
	case col == 0 && row == sh.Rows-2 && sh.Cols%4 != 0:
		return 2
	case col == 0 && row == sh.Rows-2 && sh.Cols%8 == 4:
		return 3
	case col == 2 && row == sh.Rows+4 && sh.Cols%8 == 0:
		return 4
	}
	return 0
}

// sweep walks the region diagonally, placing one codeword at each
// unassigned anchor it passes and a corner layout whenever it starts
// an iteration on a trigger position.  The walk runs upward to the
// right and back downward to the left, stepping off the region and
// wrapping through place; codewords are numbered in walk order.
func (b *builder) sweep() {
	h, w := b.shape.Rows, b.shape.Cols
	row, col := 4, 0
	for {
		if n := cornerAt(b.shape, row, col); n != 0 {
			b.ncw++
			b.corner(n, b.ncw)
		}
		for {
			if row < h && col >= 0 && b.cells[row*w+col].Kind == unset {
				b.ncw++
				b.utah(row, col, b.ncw)
			}
			row -= 2
			col += 2
			if row < 0 || col >= w {
				break
			}
		}
		row++
		col += 3
		for {
			if row >= 0 && col < w && b.cells[row*w+col].Kind == unset {
				b.ncw++
				b.utah(row, col, b.ncw)
			}
			row += 2
			col -= 2
			if row >= h || col < 0 {
				break
			}
		}
		row += 3
		col++
		if row >= h && col >= w {
			break
		}
	}
}

// pad pins the fixed corner pattern if the sweep left the bottom
// right block unassigned.
func (b *builder) pad() {
	if b.cells[len(b.cells)-1].Kind != unset {
		return
	}
	h, w := b.shape.Rows, b.shape.Cols
	b.fix(h-2, w-2, true)
	b.fix(h-2, w-1, false)
	b.fix(h-1, w-2, false)
	b.fix(h-1, w-1, true)
}

func (b *builder) fix(row, col int, dark bool) {
	c := &b.cells[row*b.shape.Cols+col]
	if c.Kind != unset {
		b.bad = true
		return
	}
	*c = Cell{Kind: Fixed, Dark: dark}
}

// verify checks the finished map: every module labelled, and each of
// the eight bits of every codeword placed exactly once.
func (b *builder) verify() bool {
	seen := make([]uint16, b.ncw)
	for i := range b.cells {
		c := &b.cells[i]
		switch c.Kind {
		case Data:
			mask := uint16(1) << c.Bit
			if seen[c.Codeword-1]&mask != 0 {
				return false
			}
			seen[c.Codeword-1] |= mask
		case unset:
			return false
		}
	}
	for _, v := range seen {
		if v != 0x1fe {
			return false
		}
	}
	return true
}
