// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoUserIDInContext is returned when a /users/{id} handler runs
	// without the id middleware in front of it.
	ErrNoUserIDInContext = errors.New("no user id in request context")

	// ErrDecodingBody wraps JSON decoding failures of request bodies.
	ErrDecodingBody = errors.New("error decoding request body")
)
