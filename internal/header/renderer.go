package header

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"log/slog"

	"github.com/bornholm/navchrome/internal/menu"
	"github.com/bornholm/navchrome/internal/ui"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/**
var templateFs embed.FS

var rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "navchrome",
	Subsystem: "header",
	Name:      "renders_total",
	Help:      "Total rendered header components",
}, []string{"component"})

type Translator interface {
	Printer(tag language.Tag) *message.Printer
}

// Renderer renders the header components. It holds no per-render state and
// is safe for concurrent use.
type Renderer struct {
	site       Site
	translator Translator
	templates  *template.Template
	logger     *slog.Logger
}

func NewRenderer(site Site, translator Translator, funcs ...OptionFunc) (*Renderer, error) {
	opts := NewOptions(funcs...)

	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Overrides != nil {
		tmpl, err = ui.Override(tmpl, opts.Overrides)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse template overrides")
		}
	}

	renderer := &Renderer{
		site:       site,
		translator: translator,
		templates:  tmpl,
		logger:     opts.Logger,
	}

	return renderer, nil
}

func (r *Renderer) RenderMobileHeader(ctx context.Context, w io.Writer, tag language.Tag, props Props) error {
	view := NewMobileHeaderView(r.site, r.translator.Printer(tag), props)

	r.logger.DebugContext(ctx, "rendering mobile header",
		slog.String("lang", tag.String()),
		slog.Bool("loggedIn", props.LoggedIn),
		slog.Bool("primary", view.Primary != nil),
		slog.Bool("account", view.Account != nil),
	)

	if err := r.templates.ExecuteTemplate(w, "mobile-header", view); err != nil {
		return errors.WithStack(err)
	}

	rendersTotal.WithLabelValues("mobile-header").Inc()

	return nil
}

func (r *Renderer) MobileHeader(ctx context.Context, tag language.Tag, props Props) (template.HTML, error) {
	var buff bytes.Buffer

	if err := r.RenderMobileHeader(ctx, &buff, tag, props); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}

func (r *Renderer) RenderUserDropdown(ctx context.Context, w io.Writer, tag language.Tag, props DropdownProps) error {
	view := NewUserDropdownView(r.site, r.translator.Printer(tag), props)

	r.logger.DebugContext(ctx, "rendering user dropdown",
		slog.String("lang", tag.String()),
		slog.Int("items", len(view.Items)),
	)

	if err := r.templates.ExecuteTemplate(w, "user-dropdown", view); err != nil {
		return errors.WithStack(err)
	}

	rendersTotal.WithLabelValues("user-dropdown").Inc()

	return nil
}

func (r *Renderer) UserDropdown(ctx context.Context, tag language.Tag, props DropdownProps) (template.HTML, error) {
	var buff bytes.Buffer

	if err := r.RenderUserDropdown(ctx, &buff, tag, props); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}

// AccountMenu returns the authenticated account menu of the given user,
// translated for tag.
func (r *Renderer) AccountMenu(tag language.Tag, username string) []menu.Group {
	return AccountMenu(r.site, r.translator.Printer(tag), username)
}
