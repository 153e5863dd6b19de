package bitvec_test

import (
	"testing"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	// want: ones, zeros, trailing zeros, leading zeros, trailing ones, leading ones
	tests := []struct {
		name  string
		value *bitvec.Binary
		want  [6]int
	}{
		{name: "byte", value: bin(t, "00101100"), want: [6]int{3, 5, 2, 2, 0, 0}},
		{name: "ones", value: bitvec.Ones(70, bitvec.Unsigned), want: [6]int{70, 0, 0, 0, 70, 70}},
		{name: "zeros", value: bitvec.Zeros(70, bitvec.Unsigned), want: [6]int{0, 70, 70, 70, 0, 0}},
		{name: "empty", value: bitvec.Zeros(0, bitvec.Unsigned), want: [6]int{}},
		{name: "ones at both ends", value: bin(t, "11000111"), want: [6]int{5, 3, 0, 0, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := [6]int{
				tt.value.CountOnes(),
				tt.value.CountZeros(),
				tt.value.TrailingZeros(),
				tt.value.LeadingZeros(),
				tt.value.TrailingOnes(),
				tt.value.LeadingOnes(),
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("single bit across words", func(t *testing.T) {
		v := bitvec.Zeros(130, bitvec.Unsigned)
		require.NoError(t, v.SetBit(100, true))
		assert.Equal(t, 100, v.TrailingZeros())
		assert.Equal(t, 29, v.LeadingZeros())
	})
}

func TestFind(t *testing.T) {
	x := bin(t, "00101100")

	tests := []struct {
		name    string
		pattern string
		want    int
		wantAll []int
	}{
		{name: "single one", pattern: "1", want: 2, wantAll: []int{2, 3, 5}},
		{name: "single zero", pattern: "0", want: 0, wantAll: []int{0, 1, 4, 6, 7}},
		{name: "pair", pattern: "11", want: 2, wantAll: []int{2}},
		{name: "gapped", pattern: "101", want: 3, wantAll: []int{3}},
		{name: "absent", pattern: "111", want: -1},
		{name: "longer than value", pattern: "0x100", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := bin(t, tt.pattern)

			got, err := x.FindFirst(pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			all, err := x.FindAll(pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, all)
		})
	}

	t.Run("overlapping matches", func(t *testing.T) {
		all, err := bin(t, "1111").FindAll(bin(t, "11"))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, all)
	})

	t.Run("pattern across words", func(t *testing.T) {
		v := bitvec.Zeros(200, bitvec.Unsigned)
		require.NoError(t, v.FillSlice(120, 190, 1, true))
		got, err := v.FindFirst(bitvec.Ones(70, bitvec.Unsigned))
		require.NoError(t, err)
		assert.Equal(t, 120, got)
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, err := x.FindFirst(bitvec.Zeros(0, bitvec.Unsigned))
		require.ErrorIs(t, err, bitvec.ErrEmptyPattern)
		_, err = x.FindAll(bitvec.Zeros(0, bitvec.Unsigned))
		require.ErrorIs(t, err, bitvec.ErrEmptyPattern)
	})
}

func TestFindOnesAndZeros(t *testing.T) {
	x := bin(t, "00101100")
	assert.Equal(t, []int{2, 3, 5}, x.FindOnes())
	assert.Equal(t, []int{0, 1, 4, 6, 7}, x.FindZeros())
	assert.Empty(t, bitvec.Zeros(5, bitvec.Unsigned).FindOnes())
	assert.Len(t, bitvec.Zeros(70, bitvec.Unsigned).FindZeros(), 70)
}
