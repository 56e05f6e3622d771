package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/narvi/internal/common"
)

type testParams struct {
	N     int    `json:"N" validate:"gt=1"`
	Label string `json:"label" validate:"omitempty,max=4"`
}

func TestParamsDecode(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    testParams
		wantErr bool
	}{
		{name: "int values", params: Params{"N": 16}, want: testParams{N: 16}},
		{name: "float values from JSON", params: Params{"N": float64(1 << 14), "label": "ab"}, want: testParams{N: 1 << 14, Label: "ab"}},
		{name: "validation failure", params: Params{"N": 1}, wantErr: true},
		{name: "type mismatch", params: Params{"N": "sixteen"}, wantErr: true},
		{name: "too long label", params: Params{"N": 2, "label": "abcdef"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testParams
			err := tt.params.Decode(&got)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidParameters)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsClone_Nil(t *testing.T) {
	var p Params
	assert.Nil(t, p.Clone())
}
