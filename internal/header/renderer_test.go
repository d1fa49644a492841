package header

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/navchrome/internal/menu"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

func newTestRenderer(t *testing.T, site Site, funcs ...OptionFunc) *Renderer {
	t.Helper()

	renderer, err := NewRenderer(site, newTestCatalog(t), funcs...)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return renderer
}

func renderMobileHeader(t *testing.T, renderer *Renderer, tag language.Tag, props Props) string {
	t.Helper()

	var buff bytes.Buffer

	if err := renderer.RenderMobileHeader(context.Background(), &buff, tag, props); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buff.String()
}

func TestRenderMobileHeaderLoggedOutScenario(t *testing.T) {
	renderer := newTestRenderer(t, testSite)

	props := NewProps()
	props.MainMenu = menu.Descriptors()
	props.SecondaryMenu = menu.Descriptors()
	props.UserMenu = []menu.Group{}
	props.LoggedOutItems = []menu.Descriptor{
		{Kind: menu.KindItem, Label: "Sign in", Href: "/signin"},
		{Kind: menu.KindItem, Label: "Register", Href: "/register"},
	}

	doc := parseHTML(t, renderMobileHeader(t, renderer, language.English, props))

	if e, g := 0, region(doc, "primary").Length(); e != g {
		t.Errorf("primary region: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, region(doc, "branding").Length(); e != g {
		t.Errorf("branding region: expected '%v', got '%v'", e, g)
	}

	account := region(doc, "account")
	if e, g := 1, account.Length(); e != g {
		t.Fatalf("account region: expected '%v', got '%v'", e, g)
	}

	links := account.Find("a")
	if e, g := 2, links.Length(); e != g {
		t.Fatalf("links.Length(): expected '%v', got '%v'", e, g)
	}

	expected := []struct {
		Label string
		Href  string
		Class string
	}{
		{"Sign in", "/signin", "btn btn-block btn-outline-primary"},
		{"Register", "/register", "btn btn-block btn-primary"},
	}

	links.Each(func(idx int, link *goquery.Selection) {
		exp := expected[idx]

		if e, g := exp.Label, text(link); e != g {
			t.Errorf("links[%d] text: expected '%v', got '%v'", idx, e, g)
		}

		if e, g := exp.Href, link.AttrOr("href", ""); e != g {
			t.Errorf("links[%d] href: expected '%v', got '%v'", idx, e, g)
		}

		if e, g := exp.Class, link.AttrOr("class", ""); e != g {
			t.Errorf("links[%d] class: expected '%v', got '%v'", idx, e, g)
		}
	})
}

func TestRenderMobileHeaderSkipLinkFirst(t *testing.T) {
	renderer := newTestRenderer(t, testSite)

	props := NewProps()
	props.MainMenu = menu.Descriptors(menu.Item("Courses", "/courses"))

	doc := parseHTML(t, renderMobileHeader(t, renderer, language.French, props))

	headers := doc.Find("header")
	if e, g := 1, headers.Length(); e != g {
		t.Fatalf("headers.Length(): expected '%v', got '%v'", e, g)
	}

	first := headers.Children().First()
	if !first.Is("a") {
		t.Fatalf("first header child: expected skip link, got '%v'", goquery.NodeName(first))
	}

	if e, g := "#main", first.AttrOr("href", ""); e != g {
		t.Errorf("skip link href: expected '%v', got '%v'", e, g)
	}

	if e, g := "Aller au contenu principal", text(first); e != g {
		t.Errorf("skip link text: expected '%v', got '%v'", e, g)
	}

	if e, g := "Principal", headers.AttrOr("aria-label", ""); e != g {
		t.Errorf("header aria-label: expected '%v', got '%v'", e, g)
	}
}

func TestRenderMobileHeaderPrimaryRegion(t *testing.T) {
	renderer := newTestRenderer(t, testSite)

	props := NewProps()
	props.MainMenu = menu.Descriptors(
		menu.Descriptor{Kind: menu.KindItem, Label: "Courses", Href: "/courses", Active: true},
		menu.Submenu("Programs", template.HTML(`<a class="dropdown-item" href="/programs/law">Law</a>`)),
	)
	props.SecondaryMenu = menu.Descriptors(
		menu.Descriptor{Kind: menu.KindItem, Label: "Archive", Href: "/archive", Disabled: true},
	)

	doc := parseHTML(t, renderMobileHeader(t, renderer, language.English, props))

	nav := region(doc, "primary").Find("nav")
	if e, g := 1, nav.Length(); e != g {
		t.Fatalf("nav.Length(): expected '%v', got '%v'", e, g)
	}

	links := nav.Find("a")

	expected := []struct {
		Label string
		Class string
	}{
		{"Courses", "nav-link active"},
		{"Law", "dropdown-item"},
		{"Archive", "nav-link disabled"},
	}

	if e, g := len(expected), links.Length(); e != g {
		t.Fatalf("links.Length(): expected '%v', got '%v'", e, g)
	}

	links.Each(func(idx int, link *goquery.Selection) {
		exp := expected[idx]

		if e, g := exp.Label, text(link); e != g {
			t.Errorf("links[%d] text: expected '%v', got '%v'", idx, e, g)
		}

		if e, g := exp.Class, link.AttrOr("class", ""); e != g {
			t.Errorf("links[%d] class: expected '%v', got '%v'", idx, e, g)
		}
	})

	summaries := nav.Find("summary")
	if e, g := 1, summaries.Length(); e != g {
		t.Fatalf("summaries.Length(): expected '%v', got '%v'", e, g)
	}

	if e, g := "submenu-menu-programs", summaries.AttrOr("aria-controls", ""); e != g {
		t.Errorf("submenu aria-controls: expected '%v', got '%v'", e, g)
	}

	if e, g := "Programs", text(summaries); e != g {
		t.Errorf("submenu trigger: expected '%v', got '%v'", e, g)
	}
}

func TestRenderMobileHeaderPrerenderedMenu(t *testing.T) {
	renderer := newTestRenderer(t, testSite)

	props := NewProps()
	props.MainMenu = menu.Prerendered(template.HTML(`<a id="custom" href="/custom">Custom</a>`))

	doc := parseHTML(t, renderMobileHeader(t, renderer, language.English, props))

	if e, g := 1, region(doc, "primary").Find("a#custom").Length(); e != g {
		t.Errorf("prerendered node: expected '%v', got '%v'", e, g)
	}
}

func TestRenderMobileHeaderLoggedIn(t *testing.T) {
	site := testSite
	site.OrderHistoryURL = "https://x/orders"

	renderer := newTestRenderer(t, site)

	props := NewProps()
	props.LoggedIn = true
	props.Username = "jdoe"
	props.Avatar = "https://cdn.example.com/jdoe.png"
	props.UserMenu = renderer.AccountMenu(language.English, "jdoe")
	props.LoggedOutItems = []menu.Descriptor{menu.Item("Sign in", "/signin")}

	doc := parseHTML(t, renderMobileHeader(t, renderer, language.English, props))

	account := region(doc, "account")
	if e, g := 1, account.Length(); e != g {
		t.Fatalf("account region: expected '%v', got '%v'", e, g)
	}

	if e, g := 5, account.Find("li").Length(); e != g {
		t.Fatalf("items: expected '%v', got '%v'", e, g)
	}

	orders := account.Find(`a[href="https://x/orders"]`)
	if e, g := 1, orders.Length(); e != g {
		t.Fatalf("order history links: expected '%v', got '%v'", e, g)
	}

	if e, g := "Order History", text(orders); e != g {
		t.Errorf("order history label: expected '%v', got '%v'", e, g)
	}

	images := account.Find("img")
	if e, g := 1, images.Length(); e != g {
		t.Fatalf("images.Length(): expected '%v', got '%v'", e, g)
	}

	if e, g := "jdoe", images.AttrOr("alt", ""); e != g {
		t.Errorf("avatar alt: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, account.Find(`a[href="/signin"]`).Length(); e != g {
		t.Errorf("logged out actions: expected '%v', got '%v'", e, g)
	}
}

func TestRenderMobileHeaderIdempotent(t *testing.T) {
	renderer := newTestRenderer(t, testSite)

	props := NewProps()
	props.MainMenu = menu.Descriptors(menu.Item("Courses", "/courses"), menu.Submenu("More", "<p>more</p>"))
	props.LoggedOutItems = []menu.Descriptor{menu.Item("Sign in", "/signin"), menu.Item("Register", "/register")}

	first := renderMobileHeader(t, renderer, language.English, props)
	second := renderMobileHeader(t, renderer, language.English, props)

	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestRenderMobileHeaderLogoOverride(t *testing.T) {
	overrides := fstest.MapFS{
		"logo.gohtml": {Data: []byte(`{{ define "logo" }}<span id="custom-logo">{{ .Alt }}</span>{{ end }}`)},
	}

	renderer := newTestRenderer(t, testSite, WithOverrides(overrides))

	props := NewProps()
	props.Logo = "/logo.svg"
	props.LogoAltText = "Aspen"

	output := renderMobileHeader(t, renderer, language.English, props)
	doc := parseHTML(t, output)

	if e, g := "Aspen", text(region(doc, "branding").Find("#custom-logo")); e != g {
		t.Fatalf("custom logo: expected '%v', got '%v'", e, g)
	}

	if strings.Contains(output, "/logo.svg") {
		t.Errorf("output: expected default logo to be replaced")
	}
}

func TestRenderUserDropdown(t *testing.T) {
	site := testSite
	site.HelpURL = "https://support.example.com"

	renderer := newTestRenderer(t, site)

	var buff bytes.Buffer

	if err := renderer.RenderUserDropdown(context.Background(), &buff, language.English, DropdownProps{Username: "jdoe"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := parseHTML(t, buff.String())

	items := doc.Find("a.dropdown-item")

	expected := []struct {
		Label string
		Href  string
	}{
		{"Dashboard", "https://lms.example.com/dashboard"},
		{"Profile", "https://profile.example.com/u/jdoe"},
		{"Account", "https://account.example.com/settings"},
		{"Sign Out", "https://lms.example.com/logout"},
	}

	if e, g := len(expected), items.Length(); e != g {
		t.Fatalf("items.Length(): expected '%v', got '%v'", e, g)
	}

	items.Each(func(idx int, item *goquery.Selection) {
		if e, g := expected[idx].Label, text(item); e != g {
			t.Errorf("items[%d] text: expected '%v', got '%v'", idx, e, g)
		}

		if e, g := expected[idx].Href, item.AttrOr("href", ""); e != g {
			t.Errorf("items[%d] href: expected '%v', got '%v'", idx, e, g)
		}
	})

	help := doc.Find(`a[href="https://support.example.com"]`)
	if e, g := 1, help.Length(); e != g {
		t.Fatalf("help.Length(): expected '%v', got '%v'", e, g)
	}

	if e, g := "_blank", help.AttrOr("target", ""); e != g {
		t.Errorf("help target: expected '%v', got '%v'", e, g)
	}

	toggle := doc.Find("span[data-hj-suppress]")
	if e, g := 1, toggle.Length(); e != g {
		t.Fatalf("toggle.Length(): expected '%v', got '%v'", e, g)
	}

	if e, g := "jdoe", text(toggle); e != g {
		t.Errorf("toggle label: expected '%v', got '%v'", e, g)
	}
}
