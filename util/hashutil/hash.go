package hashutil

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashLength is the byte length of a Keccak256 digest.
const HashLength = 32

// Keccak256 returns the chain hash of input data bytes.
// It is the original Keccak-256 padding, not the FIPS-202 SHA3-256 one.
func Keccak256(data ...[]byte) []byte {
	keccakH := sha3.NewLegacyKeccak256()
	for _, b := range data {
		keccakH.Write(b)
	}
	return keccakH.Sum(nil)
}

// Keccak256Hex returns the lower-case hex form of Keccak256(data).
func Keccak256Hex(data []byte) string {
	return hex.EncodeToString(Keccak256(data))
}

// Sha256 returns sha256 of input data bytes.
func Sha256(data []byte) []byte {
	sha256H := sha256.New()
	sha256H.Reset()
	sha256H.Write(data)
	return sha256H.Sum(nil)
}

// DoubleSha256 returns sha256(sha256(data)).
func DoubleSha256(data []byte) []byte {
	return Sha256(Sha256(data))
}

// Checksum returns the checksum for a given piece of data
// using sha256 twice as the hash algorithm.
func Checksum(data []byte) []byte {
	hash := DoubleSha256(data)
	return hash[:4]
}
