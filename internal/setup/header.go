package setup

import (
	"context"
	"log/slog"
	"os"

	"github.com/bornholm/navchrome/internal/config"
	"github.com/bornholm/navchrome/internal/header"
	"github.com/bornholm/navchrome/internal/i18n"
	"github.com/bornholm/navchrome/pkg/log"
	"github.com/pkg/errors"
)

var NewCatalogFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*i18n.Catalog, error) {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, errors.Wrap(err, "could not load message catalog")
	}

	return catalog, nil
})

var NewRendererFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*header.Renderer, error) {
	catalog, err := NewCatalogFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	site := NewSiteFromConfig(conf)

	slog.DebugContext(ctx, "header site links",
		log.ScrubbedURL("lmsBaseUrl", site.LMSBaseURL),
		log.ScrubbedURL("accountProfileUrl", site.AccountProfileURL),
		log.ScrubbedURL("accountSettingsUrl", site.AccountSettingsURL),
		log.ScrubbedURL("orderHistoryUrl", site.OrderHistoryURL),
		log.ScrubbedURL("logoutUrl", site.LogoutURL),
		slog.Bool("minimalHeader", site.MinimalHeader),
	)

	opts := []header.OptionFunc{
		header.WithLogger(slog.Default()),
	}

	if dir := string(conf.Header.Overrides); dir != "" {
		slog.InfoContext(ctx, "using header template overrides", slog.String("dir", dir))
		opts = append(opts, header.WithOverrides(os.DirFS(dir)))
	}

	renderer, err := header.NewRenderer(site, catalog, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return renderer, nil
})

func NewSiteFromConfig(conf *config.Config) header.Site {
	return header.Site{
		LMSBaseURL:         string(conf.Site.LMSBaseURL),
		AccountProfileURL:  string(conf.Site.AccountProfileURL),
		AccountSettingsURL: string(conf.Site.AccountSettingsURL),
		OrderHistoryURL:    string(conf.Site.OrderHistoryURL),
		LogoutURL:          string(conf.Site.LogoutURL),
		HelpURL:            string(conf.Site.HelpURL),
		MinimalHeader:      bool(conf.Site.MinimalHeader),
	}
}

func NewPropsFromConfig(conf *config.Config) header.Props {
	props := header.NewProps()

	props.Logo = string(conf.Header.Logo)
	props.LogoAltText = string(conf.Header.LogoAltText)
	props.LogoDestination = string(conf.Header.LogoDestination)
	props.StickyOnMobile = bool(conf.Header.StickyOnMobile)
	props.MainMenu = conf.Header.MainMenu
	props.SecondaryMenu = conf.Header.SecondaryMenu

	if conf.Header.LoggedOutItems != nil {
		props.LoggedOutItems = conf.Header.LoggedOutItems
	}

	return props
}
