package usecase

import "errors"

// ErrTenantAccessDenied means the actor's organizational identifiers do
// not reach the requested resource. Handlers surface it with the same
// shape as a not-found so existence never leaks across tenants.
var ErrTenantAccessDenied = errors.New("tenant access denied")
