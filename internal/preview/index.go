package preview

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/navchrome/internal/header"
	"github.com/bornholm/navchrome/internal/ui"
	"github.com/bornholm/navchrome/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

const UserParam = "user"

// serveIndex renders the preview page, logged in as the user named by the
// query string if any
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tag := h.resolver.ResolveTag(r)
	username := strings.TrimSpace(r.URL.Query().Get(UserParam))

	ctx = log.WithAttrs(ctx, slog.String("lang", tag.String()))

	props := h.getHeaderProps(tag, username)

	data := IndexTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Header preview",
			Lang:      tag.String(),
		},
		Username: username,
		LoggedIn: props.LoggedIn,
	}

	mobileHeader, err := h.renderer.MobileHeader(ctx, tag, props)
	if err != nil {
		slog.ErrorContext(ctx, "could not render mobile header", log.Error(errors.WithStack(err)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data.MobileHeader = mobileHeader

	if props.LoggedIn {
		dropdown, err := h.renderer.UserDropdown(ctx, tag, header.DropdownProps{Username: username})
		if err != nil {
			slog.ErrorContext(ctx, "could not render user dropdown", log.Error(errors.WithStack(err)))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		data.UserDropdown = dropdown
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// getHeaderProps derives the props of one render from the configured ones.
func (h *Handler) getHeaderProps(tag language.Tag, username string) header.Props {
	props := h.props

	if username == "" {
		return props
	}

	props.LoggedIn = true
	props.Username = username
	props.UserMenu = h.renderer.AccountMenu(tag, username)

	return props
}
