package header

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/navchrome/internal/i18n"
	"github.com/pkg/errors"
)

var testSite = Site{
	LMSBaseURL:         "https://lms.example.com",
	AccountProfileURL:  "https://profile.example.com",
	AccountSettingsURL: "https://account.example.com/settings",
	LogoutURL:          "https://lms.example.com/logout",
}

func newTestCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()

	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return catalog
}

func parseHTML(t *testing.T, raw string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func region(doc *goquery.Document, name string) *goquery.Selection {
	return doc.Find(`[data-region="` + name + `"]`)
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
