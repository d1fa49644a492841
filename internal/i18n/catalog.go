package i18n

import (
	"embed"
	"io/fs"
	"net/http"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const LangParam = "lang"

// BaseLocale is the locale every other catalog falls back to.
var BaseLocale = language.English

//go:embed locales/*.yml
var embeddedFs embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

func LoadEmbedded() (*Catalog, error) {
	c, err := LoadFS(embeddedFs)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return c, nil
}

// LoadFS loads every locales/*.yml file of the given filesystem.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(paths) == 0 {
		return nil, errors.New("no locale file found")
	}

	sort.Strings(paths)

	locales := make(map[language.Tag]map[string]string, len(paths))
	tags := make([]language.Tag, 0, len(paths))

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read locale file '%s'", path)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrapf(err, "could not parse locale file '%s'", path)
		}

		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale in file '%s'", path)
		}

		if _, exists := locales[tag]; exists {
			return nil, errors.Errorf("locale '%s' defined more than once", tag)
		}

		locales[tag] = file.Messages

		if tag != BaseLocale {
			tags = append(tags, tag)
		}
	}

	base, exists := locales[BaseLocale]
	if !exists {
		return nil, errors.Errorf("base locale '%s' is not defined", BaseLocale)
	}

	tags = append([]language.Tag{BaseLocale}, tags...)

	builder := catalog.NewBuilder(catalog.Fallback(BaseLocale))

	for _, tag := range tags {
		messages := locales[tag]

		for key, value := range base {
			if translated, exists := messages[key]; exists {
				value = translated
			}

			if err := builder.SetString(tag, key, value); err != nil {
				return nil, errors.Wrapf(err, "could not register message '%s' for locale '%s'", key, tag)
			}
		}
	}

	c := &Catalog{
		builder: builder,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}

	return c, nil
}

// Supported returns the locales of the catalog, base locale first.
func (c *Catalog) Supported() []language.Tag {
	tags := make([]language.Tag, len(c.tags))
	copy(tags, c.tags)
	return tags
}

// Match returns the supported locale closest to the given tags.
func (c *Catalog) Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return BaseLocale
	}

	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return BaseLocale
	}

	return c.tags[index]
}

// Printer returns a printer translating messages in the locale closest to
// tag.
func (c *Catalog) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(c.Match(tag), message.Catalog(c.builder))
}

// ResolveTag determines the best locale for the request, from the lang query
// parameter then the Accept-Language header.
func (c *Catalog) ResolveTag(r *http.Request) language.Tag {
	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return c.Match(tag)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return c.Match(tags...)
		}
	}

	return BaseLocale
}
