package auth

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// ServiceUsername identifies callers authenticated with the static API key
const ServiceUsername = "service"

type profileKey struct{}

// WithProfile attaches the authenticated caller to ctx
func WithProfile(ctx context.Context, p domain.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// ProfileFromContext returns the authenticated caller, if any
func ProfileFromContext(ctx context.Context) (domain.Profile, bool) {
	p, ok := ctx.Value(profileKey{}).(domain.Profile)
	return p, ok
}

// ServiceProfile is the identity granted to API key callers
func ServiceProfile() domain.Profile {
	return domain.Profile{Username: ServiceUsername, IsAdmin: true}
}

// CanActFor reports whether caller may read or modify username's data
func CanActFor(caller domain.Profile, username string) bool {
	return caller.IsAdmin || caller.Username == username
}
