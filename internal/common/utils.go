package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used for master secrets and key material once they are consumed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
