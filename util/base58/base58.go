package base58

import (
	"bytes"
	"errors"
	"gsc-contract/util/hashutil"

	"github.com/mr-tron/base58"
)

// CheckDecode decodes base58 with checksum check.
func CheckDecode(s string) (b []byte, err error) {
	b, err = base58.Decode(s)
	if err != nil {
		return nil, err
	}

	if len(b) < 5 {
		return nil, errors.New("invalid base-58 check string: missing checksum")
	}

	if !bytes.Equal(hashutil.Checksum(b[:len(b)-4]), b[len(b)-4:]) {
		return nil, errors.New("invalid base-58 check string: invalid checksum")
	}

	// Trim last 4 bytes.
	b = b[:len(b)-4]

	return b, nil
}

// CheckEncode encodes the given bytes into
// base58 encoding with checksum appended to it.
// The input slice is left untouched.
func CheckEncode(b []byte) string {
	buf := make([]byte, 0, len(b)+4)
	buf = append(buf, b...)
	buf = append(buf, hashutil.Checksum(b)...)
	return base58.Encode(buf)
}
