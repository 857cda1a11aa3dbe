package byteutil

// Concat joins the given byte slices in order into a newly allocated slice.
// None of the inputs are modified.
func Concat(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	joined := make([]byte, 0, size)
	for _, p := range parts {
		joined = append(joined, p...)
	}

	return joined
}
