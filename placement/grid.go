// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import "strconv"

// A Grid holds the module colours of a data region, packed one bit
// per module, rows padded to byte boundaries.  It carries no finder
// pattern, alignment patterns or quiet zone.
type Grid struct {
	Bitmap []byte // 1 is dark
	Rows   int    // number of module rows
	Cols   int    // number of module columns
	Stride int    // number of bytes per row
}

// NewGrid returns an all-light grid for a data region of the given
// shape.
func NewGrid(sh Shape) *Grid {
	stride := (sh.Cols + 7) >> 3
	return &Grid{
		Bitmap: make([]byte, sh.Rows*stride),
		Rows:   sh.Rows,
		Cols:   sh.Cols,
		Stride: stride,
	}
}

// Dark reports whether the module at (row, col) is dark.
// Out of range coordinates are light.
func (g *Grid) Dark(row, col int) bool {
	return 0 <= row && row < g.Rows && 0 <= col && col < g.Cols &&
		g.Bitmap[row*g.Stride+col>>3]&(0x80>>(col&7)) != 0
}

// Set sets the colour of the module at (row, col).
func (g *Grid) Set(row, col int, dark bool) {
	mask := byte(0x80) >> (col & 7)
	if dark {
		g.Bitmap[row*g.Stride+col>>3] |= mask
	} else {
		g.Bitmap[row*g.Stride+col>>3] &^= mask
	}
}

// A LengthError reports a codeword stream whose length does not match
// the map it is encoded with.
type LengthError struct {
	Want, Got int
}

func (e LengthError) Error() string {
	return "datamatrix: " + strconv.Itoa(e.Got) + " codewords, want " +
		strconv.Itoa(e.Want)
}

// A GridError reports a grid whose size does not match the map it is
// decoded with.
type GridError struct {
	Want, Got Shape
}

func (e GridError) Error() string {
	return "datamatrix: " + e.Got.String() + " grid, want " +
		e.Want.String()
}

// Encode writes a stream of data and error correction codewords into
// a fresh grid, one bit per module as the map lays them out, most
// significant bit of each codeword first.  The stream length must
// equal Codewords.
func (m *Map) Encode(codewords []byte) (*Grid, error) {
	if len(codewords) != m.ncw {
		return nil, LengthError{m.ncw, len(codewords)}
	}
	g := NewGrid(m.shape)
	cells := m.cells
	for off := 0; len(cells) != 0; off += g.Stride {
		row := cells[:m.shape.Cols]
		cells = cells[m.shape.Cols:]
		for col := range row {
			c := &row[col]
			dark := c.Dark
			if c.Kind == Data {
				dark = codewords[c.Codeword-1]>>(8-c.Bit)&1 != 0
			}
			if dark {
				g.Bitmap[off+col>>3] |= 0x80 >> (col & 7)
			}
		}
	}
	return g, nil
}

// Decode reads the codeword stream back from a grid of module
// colours.  fixedOK reports whether the fixed corner modules, if the
// map has them, all hold their expected colour; a mismatch does not
// stop decoding, as judging symbol damage is up to the error
// correction layer.
func (m *Map) Decode(g *Grid) (codewords []byte, fixedOK bool, err error) {
	if g.Rows != m.shape.Rows || g.Cols != m.shape.Cols {
		return nil, false, GridError{m.shape, Shape{g.Rows, g.Cols}}
	}
	codewords = make([]byte, m.ncw)
	fixedOK = true
	i := 0
	for off := 0; i < len(m.cells); off += g.Stride {
		for col := 0; col < m.shape.Cols; col, i = col+1, i+1 {
			dark := g.Bitmap[off+col>>3]&(0x80>>(col&7)) != 0
			switch c := &m.cells[i]; c.Kind {
			case Data:
				if dark {
					codewords[c.Codeword-1] |= 0x80 >> (c.Bit - 1)
				}
			case Fixed:
				if dark != c.Dark {
					fixedOK = false
				}
			}
		}
	}
	return codewords, fixedOK, nil
}
