package ark

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is an opaque, deterministic digest of one input row, used as
// the registry key. The same logical row always produces the same
// fingerprint; distinct rows collide only with the usual 64-bit hash
// probability. It is a fingerprint, not a cryptographic commitment.
type Fingerprint uint64

// FingerprintRow reduces one row of field values to its fingerprint. Fields
// are length-prefixed before hashing so ("ab","c") and ("a","bc") cannot
// collide.
func FingerprintRow(fields ...string) Fingerprint {
	d := xxhash.New()
	var prefix [8]byte
	for _, f := range fields {
		binary.LittleEndian.PutUint64(prefix[:], uint64(len(f)))
		d.Write(prefix[:])
		d.WriteString(f)
	}
	return Fingerprint(d.Sum64())
}

// FingerprintColumns reduces a table of equal-length columns to one
// fingerprint per row. Columns of differing lengths are rejected with
// InconsistentLengthError before any hashing occurs.
func FingerprintColumns(columns ...[]string) ([]Fingerprint, error) {
	if len(columns) == 0 {
		return nil, nil
	}
	rows := len(columns[0])
	for _, col := range columns[1:] {
		if len(col) != rows {
			lengths := make([]int, len(columns))
			for i, c := range columns {
				lengths[i] = len(c)
			}
			return nil, &InconsistentLengthError{Lengths: lengths}
		}
	}

	fps := make([]Fingerprint, rows)
	fields := make([]string, len(columns))
	for r := 0; r < rows; r++ {
		for c, col := range columns {
			fields[c] = col[r]
		}
		fps[r] = FingerprintRow(fields...)
	}
	return fps, nil
}
