package bitvec_test

import (
	"testing"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		wantStart         int
		wantStop          int
		wantLen           int
		wantErr           error
	}{
		{name: "full", start: bitvec.IndexBegin, stop: bitvec.IndexEnd, step: 1, wantStart: 0, wantStop: 8, wantLen: 8},
		{name: "negative bounds", start: -4, stop: -1, step: 1, wantStart: 4, wantStop: 7, wantLen: 3},
		{name: "past the end", start: 6, stop: 12, step: 1, wantStart: 6, wantStop: 12, wantLen: 6},
		{name: "stepped", start: bitvec.IndexBegin, stop: bitvec.IndexEnd, step: 3, wantStart: 0, wantStop: 8, wantLen: 3},
		{name: "reversed omitted", start: bitvec.IndexEnd, stop: bitvec.IndexBegin, step: -1, wantStart: 0, wantStop: 8, wantLen: 8},
		{name: "reversed explicit", start: 8, stop: 0, step: -1, wantStart: 0, wantStop: 8, wantLen: 8},
		{name: "empty", start: 3, stop: 3, step: 1, wantStart: 3, wantStop: 3, wantLen: 0},
		{name: "zero step", start: 0, stop: 8, step: 0, wantErr: bitvec.ErrZeroStep},
		{name: "stop before start", start: 5, stop: 2, step: 1, wantErr: bitvec.ErrStopBeforeStart},
		{name: "before the beginning", start: -20, stop: 2, step: 1, wantErr: bitvec.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := bitvec.ResolveRange(tt.start, tt.stop, tt.step, 8)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantStop, r.RealEnd())
			assert.Equal(t, min(tt.wantStop, 8), r.WrappedEnd())
			assert.Equal(t, tt.wantLen, r.Len())
		})
	}
}

func TestSlice(t *testing.T) {
	x := bin(t, "00001101")

	tests := []struct {
		name              string
		start, stop, step int
		want              string
	}{
		{name: "every second", start: bitvec.IndexBegin, stop: bitvec.IndexEnd, step: 2, want: "0011"},
		{name: "every third", start: bitvec.IndexBegin, stop: bitvec.IndexEnd, step: 3, want: "011"},
		{name: "reversed", start: bitvec.IndexEnd, stop: bitvec.IndexBegin, step: -1, want: "10110000"},
		{name: "reversed explicit", start: 8, stop: 0, step: -1, want: "10110000"},
		{name: "reversed every second", start: bitvec.IndexEnd, stop: bitvec.IndexBegin, step: -2, want: "0100"},
		{name: "low nibble", start: 0, stop: 4, step: 1, want: "1101"},
		{name: "high nibble", start: -4, stop: bitvec.IndexEnd, step: 1, want: "0000"},
		{name: "padded past the end", start: 2, stop: 10, step: 1, want: "00000011"},
		{name: "fully past the end", start: 20, stop: 22, step: 1, want: "00"},
		{name: "empty", start: 3, stop: 3, step: 1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.Slice(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bin(false))
			assert.Equal(t, bitvec.Unsigned, got.Sign())
		})
	}

	t.Run("signed pads with sign bit", func(t *testing.T) {
		got, err := sbin(t, "10001101").Slice(6, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, "1110", got.Bin(false))
	})

	t.Run("full range round trips", func(t *testing.T) {
		for _, s := range []string{"", "1", "0110", "0x0123456789abcdef01"} {
			v := bin(t, s)
			assert.True(t, v.SliceRange(v.FullRange()).Equal(v), s)
		}
	})

	t.Run("wide unaligned slice", func(t *testing.T) {
		v := bitvec.Ones(200, bitvec.Unsigned)
		got, err := v.Slice(3, 150, 1)
		require.NoError(t, err)
		assert.Equal(t, 147, got.Len())
		assert.Equal(t, 147, got.CountOnes())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := x.Slice(0, 8, 0)
		require.ErrorIs(t, err, bitvec.ErrZeroStep)
		_, err = x.Slice(4, 2, 1)
		require.ErrorIs(t, err, bitvec.ErrStopBeforeStart)
	})
}

func TestBit(t *testing.T) {
	x := bin(t, "10000010")
	assert.True(t, x.Bit(1))
	assert.False(t, x.Bit(0))
	assert.True(t, x.Bit(-1))
	assert.False(t, x.Bit(-2))
	assert.False(t, x.Bit(8))
	assert.False(t, x.Bit(-9))

	s := sbin(t, "10000010")
	assert.True(t, s.Bit(8))
	assert.True(t, s.Bit(bitvec.IndexEnd))
	assert.True(t, s.Bit(-100))
}

func TestSetBit(t *testing.T) {
	x := bin(t, "10000010")
	require.NoError(t, x.SetBit(-1, false))
	require.NoError(t, x.SetBit(0, true))
	assert.Equal(t, "00000011", x.Bin(false))

	require.ErrorIs(t, x.SetBit(8, true), bitvec.ErrIndexOutOfRange)
	require.ErrorIs(t, x.SetBit(-9, true), bitvec.ErrIndexOutOfRange)
	assert.Equal(t, "00000011", x.Bin(false))
}

func TestSetSlice(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		value             string
		want              string
		wantErr           error
	}{
		{name: "every third", start: bitvec.IndexBegin, stop: bitvec.IndexEnd, step: 3, value: "101", want: "11000011"},
		{name: "extra value bits ignored", start: 0, stop: 4, step: 1, value: "111111", want: "10001111"},
		{name: "clamped to the length", start: 6, stop: 12, step: 1, value: "11", want: "11000010"},
		{name: "reversed", start: 4, stop: 0, step: -1, value: "0001", want: "10001000"},
		{name: "value too short", start: 0, stop: 4, step: 1, value: "11", wantErr: bitvec.ErrIndexOutOfRange},
		{name: "zero step", start: 0, stop: 4, step: 0, value: "1111", wantErr: bitvec.ErrZeroStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := bin(t, "10000010")
			err := x.SetSlice(tt.start, tt.stop, tt.step, bin(t, tt.value))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "10000010", x.Bin(false), "value must be left unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, x.Bin(false))
		})
	}

	t.Run("wide unaligned", func(t *testing.T) {
		x := bitvec.Zeros(200, bitvec.Unsigned)
		require.NoError(t, x.SetSlice(61, 190, 1, bitvec.Ones(129, bitvec.Unsigned)))
		assert.Equal(t, 61, x.TrailingZeros())
		assert.Equal(t, 10, x.LeadingZeros())
		assert.Equal(t, 129, x.CountOnes())
	})

	t.Run("overlapping with itself", func(t *testing.T) {
		x := bitvec.Zeros(200, bitvec.Unsigned)
		require.NoError(t, x.FillSlice(bitvec.IndexBegin, bitvec.IndexEnd, 3, true))
		orig := x.Clone()

		require.NoError(t, x.SetSlice(1, bitvec.IndexEnd, 1, x))

		want, err := orig.Slice(0, 199, 1)
		require.NoError(t, err)
		got, err := x.Slice(1, bitvec.IndexEnd, 1)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "got %s", got)
		assert.Equal(t, orig.Bit(0), x.Bit(0))
	})

	t.Run("reversed onto itself", func(t *testing.T) {
		x := bin(t, "00001101")
		require.NoError(t, x.SetSlice(bitvec.IndexEnd, bitvec.IndexBegin, -1, x))
		assert.Equal(t, "10110000", x.Bin(false))
	})
}

func TestFillSlice(t *testing.T) {
	x := bitvec.Zeros(8, bitvec.Unsigned)
	require.NoError(t, x.FillSlice(bitvec.IndexBegin, bitvec.IndexEnd, 2, true))
	assert.Equal(t, "01010101", x.Bin(false))

	require.NoError(t, x.FillSlice(4, 20, 1, false))
	assert.Equal(t, "00000101", x.Bin(false))

	require.ErrorIs(t, x.FillSlice(0, 1, 0, true), bitvec.ErrZeroStep)
}
