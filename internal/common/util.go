package common

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are wiped as soon as the request body has been built.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
