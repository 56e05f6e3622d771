package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("hash scheme %q: %w", "nonexistent", ErrSchemeNotDefined)
	if !errors.Is(err, ErrSchemeNotDefined) {
		t.Fatalf("expected wrapped error to match ErrSchemeNotDefined")
	}
	if errors.Is(err, ErrFunctionNotAvailable) {
		t.Fatalf("unexpected match with ErrFunctionNotAvailable")
	}
	if errors.Is(ErrFunctionUnloaded, ErrFunctionNotAvailable) {
		t.Fatalf("unloaded and not-available must stay distinct")
	}
}
