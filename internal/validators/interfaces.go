// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks operator input before it is queued locally or
// sent to the remote API.
//
// A [Validator] accepts any supported value and an optional list of field
// names restricting which rules run. Services receive a Validator by
// injection so rules can be swapped in tests.
package validators

import "context"

// Validator validates input, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
