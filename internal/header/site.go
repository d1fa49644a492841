package header

import (
	"net/url"
	"strings"

	"github.com/bornholm/navchrome/internal/i18n"
	"github.com/bornholm/navchrome/internal/menu"
	"golang.org/x/text/message"
)

// Site holds the externally supplied links and display flags of the header.
// Links are never computed beyond joining a base URL with a fixed path.
type Site struct {
	LMSBaseURL         string
	AccountProfileURL  string
	AccountSettingsURL string
	// OrderHistoryURL is optional, its absence removes the entry from the
	// account menu.
	OrderHistoryURL string
	LogoutURL       string
	// HelpURL is optional, its absence removes the help link of the user
	// dropdown.
	HelpURL string
	// MinimalHeader aligns the logo to the left instead of centering it.
	MinimalHeader bool
}

// AccountMenu returns the links of the authenticated account menu.
func AccountMenu(site Site, p *message.Printer, username string) []menu.Group {
	items := []menu.Descriptor{
		menu.Item(p.Sprintf(i18n.KeyDashboard), joinURL(site.LMSBaseURL, "/dashboard")),
		menu.Item(p.Sprintf(i18n.KeyProfile), joinURL(site.AccountProfileURL, "/u/"+url.PathEscape(username))),
		menu.Item(p.Sprintf(i18n.KeyAccountSettings), site.AccountSettingsURL),
	}

	if site.OrderHistoryURL != "" {
		items = append(items, menu.Item(p.Sprintf(i18n.KeyOrderHistory), site.OrderHistoryURL))
	}

	items = append(items, menu.Item(p.Sprintf(i18n.KeyLogout), site.LogoutURL))

	return []menu.Group{
		{Items: items},
	}
}

func joinURL(base string, path string) string {
	return strings.TrimSuffix(base, "/") + path
}
