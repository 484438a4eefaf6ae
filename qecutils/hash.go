package qecutils

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// CacheKey hashes a structural description (a symplectic code matrix, its
// logicals, and a noise model's parameter bytes, each already serialised by
// the caller) into a deterministic 256-bit key. decoder.BuildTailored uses
// this to memoise its recovery-table build across repeated calls with the
// same code, logicals and model bytes (a model differing in any parameter
// gives a different key), the way
// dbfv/collective_CRS.go turns a seed into a deterministic CRS via blake2b.
func CacheKey(parts ...[]byte) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on a bad key size, and we pass nil.
		panic(err)
	}
	for _, p := range parts {
		var length [8]byte
		binary.LittleEndian.PutUint64(length[:], uint64(len(p)))
		h.Write(length[:])
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// FingerprintTable hashes the raw bytes of a probability table (or any other
// bulk byte buffer) with blake3, which the teacher's go.mod pulls in
// specifically for higher-throughput bulk hashing than blake2b. Used by
// noise.Table.Fingerprint for cheap equality/invalidation checks on
// 8*4^n-byte tables without re-summing floating point values.
func FingerprintTable(data []byte) [32]byte {
	return blake3.Sum256(data)
}
