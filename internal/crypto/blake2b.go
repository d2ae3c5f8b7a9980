// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// blake2bDigester implements [Digester] with unkeyed BLAKE2b-256.
type blake2bDigester struct{}

// NewBlake2bDigester returns a [Digester] producing 64-character hex sums.
func NewBlake2bDigester() Digester {
	return blake2bDigester{}
}

func (blake2bDigester) Digest(dst io.Writer, src io.Reader) (string, int64, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, fmt.Errorf("init blake2b: %w", err)
	}

	n, err := io.Copy(io.MultiWriter(dst, h), src)
	if err != nil {
		return "", n, fmt.Errorf("copy content: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), n, nil
}
