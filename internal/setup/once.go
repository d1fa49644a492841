package setup

import (
	"context"
	"sync"

	"github.com/bornholm/navchrome/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes the first result of fn, so that components
// shared by several handlers are built a single time.
func createFromConfigOnce[T any](fn fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		once   sync.Once
		result T
		err    error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			result, err = fn(ctx, conf)
		})

		if err != nil {
			return result, errors.WithStack(err)
		}

		return result, nil
	}
}
