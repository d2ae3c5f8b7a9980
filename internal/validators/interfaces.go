// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the profile
// store: user id format, the keys a partial update may carry, platform rows
// and a non-empty picture upload. Field types need no check here because the
// JSON decoder only accepts strings for profile fields.
package validators

import "context"

// Validator checks a request value. When fields are given only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
