package backend

import (
	"context"
	"deportur/shared/constant"
	"errors"
)

var ErrMissingToken = errors.New("missing access token")

// TokenProvider returns the bearer token attached to every backend call.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type TokenProviderFunc func(ctx context.Context) (string, error)

func (f TokenProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// ContextTokenProvider hands over the operator token stored by the auth middleware.
func ContextTokenProvider() TokenProvider {
	return TokenProviderFunc(func(ctx context.Context) (string, error) {
		token, _ := ctx.Value(constant.ContextKeyToken).(string)
		if token == constant.Empty {
			return constant.Empty, ErrMissingToken
		}

		return token, nil
	})
}
