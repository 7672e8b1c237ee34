package types

import (
	"context"
	"errors"

	"signhub/internal/app/client"
)

type contextKey string

const ClientKey contextKey = "signhub_client"

var ErrNoClient = errors.New("client is not initialized")

func WithClient(ctx context.Context, c *client.Client) context.Context {
	return context.WithValue(ctx, ClientKey, c)
}

func ClientFrom(ctx context.Context) (*client.Client, error) {
	c, ok := ctx.Value(ClientKey).(*client.Client)
	if !ok || c == nil {
		return nil, ErrNoClient
	}
	return c, nil
}
