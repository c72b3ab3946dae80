// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks scene and file requests before they reach the
// services: room ids, element lists, file prefixes and batch sizes.
//
// Validation can be restricted to named fields (see the Field* constants),
// so a transport validates only what it actually received.
package validators

import "context"

// Validator validates a request value. fields, when given, restricts the
// check to those fields; an unknown field name yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
