package ui

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Masterminds/sprig/v3"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

// Templates parses the shared layouts along with the views and layouts of
// the given filesystems.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	views, err := fs.Glob(merged, "**/views/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layouts, err := fs.Glob(merged, "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	templates := append(views, layouts...)

	tmpl := template.New("").Funcs(sprig.FuncMap())

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// Override parses the *.gohtml files at the root of overrides on top of
// tmpl. A file defining an existing template name replaces it, which is how
// slots such as "logo" are customized.
func Override(tmpl *template.Template, overrides fs.FS) (*template.Template, error) {
	files, err := fs.Glob(overrides, "*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(files) == 0 {
		return tmpl, nil
	}

	tmpl, err = tmpl.ParseFS(overrides, files...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

type HeadTemplateData struct {
	PageTitle string
	Lang      string
}
