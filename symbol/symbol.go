// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol catalogues the ECC200 Data Matrix symbol sizes: the
// 24 square and 6 rectangular sizes of ISO/IEC 16022 and the 18
// rectangular extensions (DMRE) of ISO/IEC 21471.
//
// A Size describes one symbol: its dimensions in modules, the shape
// of its data region once finder and alignment patterns are stripped,
// and its codeword counts.  Lists of sizes, ordered by data capacity,
// select the smallest symbol for a payload or look a size up by its
// sensed dimensions.
package symbol // import "github.com/unixdj/datamatrix/symbol"

import (
	"strconv"

	"github.com/unixdj/datamatrix/placement"
)

// A Size is one of the 48 Data Matrix symbol sizes.
type Size int

const (
	Square10 Size = iota
	Square12
	Square14
	Square16
	Square18
	Square20
	Square22
	Square24
	Square26
	Square32
	Square36
	Square40
	Square44
	Square48
	Square52
	Square64
	Square72
	Square80
	Square88
	Square96
	Square104
	Square120
	Square132
	Square144
	Rect8x18
	Rect8x32
	Rect12x26
	Rect12x36
	Rect16x36
	Rect16x48
	Rect8x48
	Rect8x64
	Rect8x80
	Rect8x96
	Rect8x120
	Rect8x144
	Rect12x64
	Rect12x88
	Rect16x64
	Rect20x36
	Rect20x44
	Rect20x64
	Rect22x48
	Rect24x48
	Rect24x64
	Rect26x40
	Rect26x48
	Rect26x64

	numSizes = int(Rect26x64) + 1
)

// Symbol properties.  Alignment patterns split large symbols into
// several data regions; xrows and xcols count the extra interior
// alignment patterns, each two modules thick, in between.
type info struct {
	height, width int16 // symbol size in modules
	xrows, xcols  int8  // interior alignment patterns
	data          int16 // data codewords
	blocks        int8  // error correction blocks
	ecc           int16 // error correction codewords per block
}

var sizes = [numSizes]info{
	Square10:  {10, 10, 0, 0, 3, 1, 5},
	Square12:  {12, 12, 0, 0, 5, 1, 7},
	Square14:  {14, 14, 0, 0, 8, 1, 10},
	Square16:  {16, 16, 0, 0, 12, 1, 12},
	Square18:  {18, 18, 0, 0, 18, 1, 14},
	Square20:  {20, 20, 0, 0, 22, 1, 18},
	Square22:  {22, 22, 0, 0, 30, 1, 20},
	Square24:  {24, 24, 0, 0, 36, 1, 24},
	Square26:  {26, 26, 0, 0, 44, 1, 28},
	Square32:  {32, 32, 1, 1, 62, 1, 36},
	Square36:  {36, 36, 1, 1, 86, 1, 42},
	Square40:  {40, 40, 1, 1, 114, 1, 48},
	Square44:  {44, 44, 1, 1, 144, 1, 56},
	Square48:  {48, 48, 1, 1, 174, 1, 68},
	Square52:  {52, 52, 1, 1, 204, 2, 42},
	Square64:  {64, 64, 3, 3, 280, 2, 56},
	Square72:  {72, 72, 3, 3, 368, 4, 36},
	Square80:  {80, 80, 3, 3, 456, 4, 48},
	Square88:  {88, 88, 3, 3, 576, 4, 56},
	Square96:  {96, 96, 3, 3, 696, 4, 68},
	Square104: {104, 104, 3, 3, 816, 6, 56},
	Square120: {120, 120, 5, 5, 1050, 6, 68},
	Square132: {132, 132, 5, 5, 1304, 8, 62},
	Square144: {144, 144, 5, 5, 1558, 10, 62},
	Rect8x18:  {8, 18, 0, 0, 5, 1, 7},
	Rect8x32:  {8, 32, 0, 1, 10, 1, 11},
	Rect12x26: {12, 26, 0, 0, 16, 1, 14},
	Rect12x36: {12, 36, 0, 1, 22, 1, 18},
	Rect16x36: {16, 36, 0, 1, 32, 1, 24},
	Rect16x48: {16, 48, 0, 1, 49, 1, 28},
	Rect8x48:  {8, 48, 0, 1, 18, 1, 15},
	Rect8x64:  {8, 64, 0, 3, 24, 1, 18},
	Rect8x80:  {8, 80, 0, 3, 32, 1, 22},
	Rect8x96:  {8, 96, 0, 3, 38, 1, 28},
	Rect8x120: {8, 120, 0, 5, 49, 1, 32},
	Rect8x144: {8, 144, 0, 5, 63, 1, 36},
	Rect12x64: {12, 64, 0, 3, 43, 1, 27},
	Rect12x88: {12, 88, 0, 3, 64, 1, 36},
	Rect16x64: {16, 64, 0, 3, 62, 1, 36},
	Rect20x36: {20, 36, 0, 1, 44, 1, 28},
	Rect20x44: {20, 44, 0, 1, 56, 1, 34},
	Rect20x64: {20, 64, 0, 3, 84, 1, 42},
	Rect22x48: {22, 48, 0, 1, 72, 1, 38},
	Rect24x48: {24, 48, 0, 1, 80, 1, 41},
	Rect24x64: {24, 64, 0, 3, 108, 1, 46},
	Rect26x40: {26, 40, 0, 1, 70, 1, 38},
	Rect26x48: {26, 48, 0, 1, 90, 1, 42},
	Rect26x64: {26, 64, 0, 3, 118, 1, 50},
}

func (s Size) String() string {
	return strconv.Itoa(int(sizes[s].height)) + "x" +
		strconv.Itoa(int(sizes[s].width))
}

// Height returns the symbol height in modules, finder and alignment
// patterns included.
func (s Size) Height() int { return int(sizes[s].height) }

// Width returns the symbol width in modules, finder and alignment
// patterns included.
func (s Size) Width() int { return int(sizes[s].width) }

// DataRegion returns the shape of the symbol's data region: the
// modules carrying codeword bits, with the finder pattern and any
// interior alignment patterns stripped.
func (s Size) DataRegion() placement.Shape {
	i := &sizes[s]
	return placement.Shape{
		Rows: int(i.height) - 2 - 2*int(i.xrows),
		Cols: int(i.width) - 2 - 2*int(i.xcols),
	}
}

// DataCodewords returns the number of codewords available for data.
func (s Size) DataCodewords() int { return int(sizes[s].data) }

// ECCCodewords returns the number of error correction codewords.
func (s Size) ECCCodewords() int {
	return int(sizes[s].blocks) * int(sizes[s].ecc)
}

// Codewords returns the total number of codewords, data and error
// correction together.
func (s Size) Codewords() int { return s.DataCodewords() + s.ECCCodewords() }

// Blocks returns the number of interleaved error correction blocks.
func (s Size) Blocks() int { return int(sizes[s].blocks) }

// IsSquare reports whether the symbol is square.
func (s Size) IsSquare() bool { return s <= Square144 }

// IsDMRE reports whether the size is a rectangular extension defined
// in ISO/IEC 21471 rather than ISO/IEC 16022.
func (s Size) IsDMRE() bool { return s >= Rect8x48 }

// ByDimensions returns the size with the given height and width in
// modules.  It is the decode-side lookup, mapping the dimensions of a
// detected symbol back to its catalogue entry.
func ByDimensions(height, width int) (Size, bool) {
	for i := range sizes {
		if int(sizes[i].height) == height && int(sizes[i].width) == width {
			return Size(i), true
		}
	}
	return 0, false
}
