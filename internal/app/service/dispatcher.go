package service

import (
	"context"

	"oj_client/internal/api"
)

// Dispatcher issues one backend call and normalizes its outcome.
// *api.Client implements it.
type Dispatcher interface {
	Do(ctx context.Context, method, path string, opts *api.Options) (*api.Response, error)
}

// Decode unmarshals the payload of a catalog result into T, passing a call
// error through unchanged.
func Decode[T any](resp *api.Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
