package preview

import (
	"embed"
	"html/template"

	"github.com/bornholm/navchrome/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// IndexTemplateData contains the data needed to render the preview page
type IndexTemplateData struct {
	ui.HeadTemplateData
	MobileHeader template.HTML
	UserDropdown template.HTML
	Username     string
	LoggedIn     bool
}
