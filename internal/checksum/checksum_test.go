package checksum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/narvi/internal/common"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		want uint8
	}{
		{"empty", nil, 0},
		{"small", []byte{1, 2, 3}, 6},
		{"wraps to zero", bytes.Repeat([]byte{1}, 256), 0},
		{"wraps", []byte{200, 100}, 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.key))
		})
	}
}

func TestVerify(t *testing.T) {
	six := uint8(6)

	require.NoError(t, Verify(nil, 42))
	require.NoError(t, Verify(&six, 6))

	err := Verify(&six, 7)
	require.ErrorIs(t, err, common.ErrChecksumMismatch)
}
