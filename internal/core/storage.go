package core

import "context"

// ProfileRepository is the flat key-value namespace behind user records:
// key = display name, value = the JSON-serialized record.
type ProfileRepository interface {
	// Get returns nil (not an error) when the user was never recorded.
	Get(ctx context.Context, userName string) (*Record, error)
	Put(ctx context.Context, userName string, rec *Record) error
	// Delete is a no-op when the key is absent.
	Delete(ctx context.Context, userName string) error
}
