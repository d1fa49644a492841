package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/navchrome/internal/config"
	"github.com/bornholm/navchrome/internal/pprof"
	"github.com/bornholm/navchrome/internal/preview"
	"github.com/bornholm/navchrome/internal/ratelimit"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	catalog, err := NewCatalogFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	renderer, err := NewRendererFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst))
	rateLimiterMiddleware := rateLimiter.Middleware(ratelimit.RemoteAddr)

	previewHandler := preview.NewHandler(renderer, catalog, NewPropsFromConfig(conf))

	mux.Handle("/", slogMiddleware(rateLimiterMiddleware(previewHandler)))

	if conf.HTTP.Debug {
		slog.WarnContext(ctx, "debug endpoints enabled", slog.String("prefix", "/debug"))
		mux.Handle("/debug/", pprof.NewHandler("/debug"))
	}

	return mux, nil
}
