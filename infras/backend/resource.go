package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the CRUD surface of one backend collection, such as /clientes.
type Resource[T any] struct {
	client Client
	path   string
}

func NewResource[T any](client Client, path string) Resource[T] {
	return Resource[T]{client: client, path: path}
}

func (r Resource[T]) Path(suffix ...any) string {
	path := r.path

	for _, part := range suffix {
		path += fmt.Sprintf("/%v", part)
	}

	return path
}

func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	items, err := Get[[]T](ctx, r.client, r.path, nil)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (r Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	return Get[T](ctx, r.client, r.Path(id), nil)
}

func (r Resource[T]) Create(ctx context.Context, body any) (T, error) {
	return Send[T](ctx, r.client, http.MethodPost, r.path, nil, body)
}

func (r Resource[T]) Update(ctx context.Context, id int64, body any) (T, error) {
	return Send[T](ctx, r.client, http.MethodPut, r.Path(id), nil, body)
}

func (r Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, r.Path(id), nil, nil, nil) //nolint:wrapcheck
}
