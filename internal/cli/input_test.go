package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"answer", "pin-4\n", "pin-4"},
		{"empty takes default", "\n", "dflt"},
		{"whitespace takes default", "   \r\n", "dflt"},
		{"eof after text", "lastline", "lastline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Prompt(rdr(tt.input), &out, "Word scheme", "dflt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Word scheme [dflt]: ", out.String())
		})
	}
}

func TestPrompt_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := Prompt(rdr(""), &out, "Salt", "")
	require.Error(t, err)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	yes, err := Confirm(rdr("\n"), &out, "Save?", true)
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = Confirm(rdr("N\n"), &out, "Save?", true)
	require.NoError(t, err)
	assert.False(t, yes)

	yes, err = Confirm(rdr("yes\n"), &out, "Save?", false)
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = Confirm(rdr("what\n"), &out, "Save?", false)
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Master password: ")
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Master password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Master password: ")
	require.Error(t, err)
}
