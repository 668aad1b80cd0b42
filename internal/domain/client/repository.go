// internal/domain/client/repository.go
package client

import "context"

// Repository persists clients. Not-found lookups return (nil, nil) so the
// caller decides whether absence is an error.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByIDNumber(ctx context.Context, idNumber string) (*Client, error)
}
