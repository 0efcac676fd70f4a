package logic

import (
	"context"
	"net/url"

	"pupfinder/internal/api"
	"pupfinder/internal/domain"
)

// Catalog is the read side of the remote service
type Catalog interface {
	Breeds(ctx context.Context) ([]string, error)
	Search(ctx context.Context, params url.Values) (api.SearchResponse, error)
	Dogs(ctx context.Context, ids []string) ([]domain.Dog, error)
	Match(ctx context.Context, ids []string) (string, error)
}

// Authenticator owns the remote session
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) error
	Logout(ctx context.Context) error
}

// DogStore keeps every record seen during a session, so favorites from
// earlier pages can still be shown by name
type DogStore interface {
	GetDog(id string) (domain.Dog, bool)
	AddDogs(dogs ...domain.Dog)
	Len() int
	Clear()
}

var (
	_ Catalog       = (*api.Client)(nil)
	_ Authenticator = (*api.Client)(nil)
)
