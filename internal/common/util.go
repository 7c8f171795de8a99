package common

// WipeByteArray zeroes buf in place. Used to clear password buffers once
// they are no longer needed. Safe on a nil slice.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
