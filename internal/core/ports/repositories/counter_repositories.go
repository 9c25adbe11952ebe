package repositories

import "context"

// Well-known counter names.
const (
	CounterUsers    = "users"
	CounterPosts    = "posts"
	CounterComments = "comments"
)

// CounterRepositoryFacade allocates monotonically increasing sequential
// identifiers. Next must be atomic under concurrent callers, and values are
// never reused even after the entity they were assigned to is deleted.
type CounterRepositoryFacade interface {
	// Next returns the next value of the named counter, starting at 1.
	Next(ctx context.Context, name string) (int64, error)
}
