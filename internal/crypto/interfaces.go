// Package crypto holds the hashing primitives used to name stored blobs.
package crypto

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/digester_mock.go -package=mock

// Digester hashes content while it is being copied somewhere else.
type Digester interface {
	// Digest copies everything from src to dst and returns the hex encoded
	// hash of the copied bytes together with their count.
	Digest(dst io.Writer, src io.Reader) (sum string, n int64, err error)
}
