package persist

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// checksum computes the hex SHA-256 digest of the little-endian float64
// payload of the given tensors, concatenated in argument order.
func checksum(tensors ...[]float64) string {
	h := sha256.New()
	var buf [8]byte
	for _, tensor := range tensors {
		for _, v := range tensor {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
