// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific error strings.
package repository

import "errors"

// ErrEmailExists is returned when registration collides with an existing
// account. Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
