// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/datamatrix/placement"
)

func TestGrid(t *testing.T) {
	g := placement.NewGrid(placement.Shape{Rows: 6, Cols: 14})
	require.Equal(t, 2, g.Stride)
	require.Len(t, g.Bitmap, 12)
	for _, pos := range [][2]int{{0, 0}, {0, 7}, {0, 8}, {3, 5}, {5, 13}} {
		row, col := pos[0], pos[1]
		assert.False(t, g.Dark(row, col))
		g.Set(row, col, true)
		assert.True(t, g.Dark(row, col), "Set(%d, %d, true)", row, col)
		g.Set(row, col, false)
		assert.False(t, g.Dark(row, col), "Set(%d, %d, false)", row, col)
	}
	g.Set(0, 8, true)
	assert.Equal(t, byte(0x80), g.Bitmap[1])
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 14}} {
		assert.False(t, g.Dark(pos[0], pos[1]),
			"Dark(%d, %d) out of range", pos[0], pos[1])
	}
}

func TestEncode(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 10, Cols: 10})
	require.NoError(t, err)

	// All zero codewords light up nothing but the dark half of the
	// fixed corner pattern.
	g, err := m.Encode(make([]byte, 12))
	require.NoError(t, err)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			want := row == 8 && col == 8 || row == 9 && col == 9
			assert.Equal(t, want, g.Dark(row, col),
				"(%d,%d)", row, col)
		}
	}

	// All ones leave only the light half of the pattern.
	cw := make([]byte, 12)
	for i := range cw {
		cw[i] = 0xff
	}
	g, err = m.Encode(cw)
	require.NoError(t, err)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			want := !(row == 8 && col == 9 || row == 9 && col == 8)
			assert.Equal(t, want, g.Dark(row, col),
				"(%d,%d)", row, col)
		}
	}
}

// TestEncodeBitOrder pins the most significant bit of a codeword to
// the module labelled with bit 1.
func TestEncodeBitOrder(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 8, Cols: 8})
	require.NoError(t, err)
	cw := make([]byte, 8)
	cw[1] = 0x80 // second codeword, bit 1: module (0,0)
	g, err := m.Encode(cw)
	require.NoError(t, err)
	var dark [][2]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if g.Dark(row, col) {
				dark = append(dark, [2]int{row, col})
			}
		}
	}
	assert.Equal(t, [][2]int{{0, 0}}, dark)

	cw[1] = 0x01 // bit 8: module (2,2)
	g, err = m.Encode(cw)
	require.NoError(t, err)
	assert.True(t, g.Dark(2, 2))
	assert.False(t, g.Dark(0, 0))
}

func TestEncodeLength(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 10, Cols: 10})
	require.NoError(t, err)
	g, err := m.Encode(make([]byte, 5))
	require.Nil(t, g)
	require.Equal(t, placement.LengthError{Want: 12, Got: 5}, err)
	assert.EqualError(t, err, "datamatrix: 5 codewords, want 12")
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, sh := range []placement.Shape{
		{Rows: 6, Cols: 14}, {Rows: 6, Cols: 28}, {Rows: 6, Cols: 44},
		{Rows: 8, Cols: 8}, {Rows: 10, Cols: 10}, {Rows: 14, Cols: 44},
		{Rows: 22, Cols: 12}, {Rows: 24, Cols: 36},
	} {
		m, err := placement.New(sh)
		require.NoError(t, err)
		cw := make([]byte, m.Codewords())
		rnd.Read(cw)
		g, err := m.Encode(cw)
		require.NoError(t, err)
		got, fixedOK, err := m.Decode(g)
		require.NoError(t, err)
		assert.True(t, fixedOK)
		assert.Equal(t, cw, got, "region %v", sh)
	}
}

func TestDecodeSize(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 10, Cols: 10})
	require.NoError(t, err)
	g := placement.NewGrid(placement.Shape{Rows: 8, Cols: 8})
	cw, fixedOK, err := m.Decode(g)
	require.Nil(t, cw)
	require.False(t, fixedOK)
	require.Equal(t, placement.GridError{
		Want: placement.Shape{Rows: 10, Cols: 10},
		Got:  placement.Shape{Rows: 8, Cols: 8},
	}, err)
	assert.EqualError(t, err, "datamatrix: 8x8 grid, want 10x10")
}

// Damage to the fixed corner pattern is reported but does not affect
// the decoded codewords.
func TestDecodeFixedMismatch(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 10, Cols: 10})
	require.NoError(t, err)
	cw := make([]byte, 12)
	rand.New(rand.NewSource(7)).Read(cw)
	g, err := m.Encode(cw)
	require.NoError(t, err)

	g.Set(8, 8, false) // dark module of the pattern
	got, fixedOK, err := m.Decode(g)
	require.NoError(t, err)
	assert.False(t, fixedOK)
	assert.Equal(t, cw, got)

	g.Set(8, 8, true)
	g.Set(9, 8, true) // light module of the pattern
	got, fixedOK, err = m.Decode(g)
	require.NoError(t, err)
	assert.False(t, fixedOK)
	assert.Equal(t, cw, got)
}

func TestDecodeDataFlip(t *testing.T) {
	m, err := placement.New(placement.Shape{Rows: 8, Cols: 8})
	require.NoError(t, err)
	g, err := m.Encode(make([]byte, 8))
	require.NoError(t, err)
	g.Set(0, 0, true) // second codeword, bit 1
	got, fixedOK, err := m.Decode(g)
	require.NoError(t, err)
	assert.True(t, fixedOK)
	want := make([]byte, 8)
	want[1] = 0x80
	assert.Equal(t, want, got)
}
