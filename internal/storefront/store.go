package storefront

import "context"

// Store keeps session state between requests. Load reports found=false for unknown or
// expired sessions.
type Store interface {
	Load(ctx context.Context, sessionID string) (state State, found bool, err error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}
