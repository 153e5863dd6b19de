package bitvec_test

import (
	"testing"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/stretchr/testify/require"
)

// bin parses a literal, failing the test on error.
func bin(t *testing.T, s string, opts ...bitvec.Option) *bitvec.Binary {
	t.Helper()
	b, err := bitvec.FromText(s, opts...)
	require.NoError(t, err)
	return b
}

func sbin(t *testing.T, s string) *bitvec.Binary {
	t.Helper()
	return bin(t, s, bitvec.WithSign(bitvec.Signed))
}
