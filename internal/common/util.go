package common

// WipeByteArray zeroes the buffer in place. Safe to call with nil.
// Used for credential buffers once they are no longer needed.
func WipeByteArray(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
