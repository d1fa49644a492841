package header

import (
	"strings"

	"github.com/bornholm/navchrome/internal/i18n"
	"github.com/bornholm/navchrome/internal/menu"
	"golang.org/x/text/message"
)

const (
	SkipNavTarget = "#main"

	actionClassSecondary = "btn btn-block btn-outline-primary"
	actionClassPrimary   = "btn btn-block btn-primary"

	logoItemType = "http://schema.org/Organization"
)

type Link struct {
	Label string
	Href  string
}

type Logo struct {
	Src      string
	Alt      string
	Href     string
	ItemType string
}

type Avatar struct {
	Src  string
	Alt  string
	Size string
}

type PrimaryRegion struct {
	TriggerLabel string
	NavLabel     string
	Main         menu.Rendered
	Secondary    menu.Rendered
}

type BrandingRegion struct {
	Class string
	Logo  Logo
}

// Action is a logged out call to action.
type Action struct {
	Key     string
	Label   string
	Href    string
	Class   string
	Primary bool
}

type AccountRegion struct {
	NavLabel     string
	TriggerLabel string
	Avatar       Avatar
	LoggedIn     bool
	Items        []menu.Element
	Actions      []Action
}

type MobileHeaderView struct {
	Label    string
	Class    string
	SkipNav  Link
	Primary  *PrimaryRegion
	Branding BrandingRegion
	Account  *AccountRegion
}

// NewMobileHeaderView maps the props to the regions of the mobile header.
func NewMobileHeaderView(site Site, p *message.Printer, props Props) MobileHeaderView {
	view := MobileHeaderView{
		Label: p.Sprintf(i18n.KeyMainHeader),
		Class: headerClass(props.StickyOnMobile),
		SkipNav: Link{
			Label: p.Sprintf(i18n.KeySkipNav),
			Href:  SkipNavTarget,
		},
		Branding: BrandingRegion{
			Class: brandingClass(site.MinimalHeader),
			Logo: Logo{
				Src:      props.Logo,
				Alt:      props.LogoAltText,
				Href:     props.LogoDestination,
				ItemType: logoItemType,
			},
		},
	}

	if !props.MainMenu.IsEmpty() {
		view.Primary = &PrimaryRegion{
			TriggerLabel: p.Sprintf(i18n.KeyMainMenu),
			NavLabel:     p.Sprintf(i18n.KeyMainNav),
			Main:         menu.Normalize(props.MainMenu),
			Secondary:    menu.Normalize(props.SecondaryMenu),
		}
	}

	if len(props.UserMenu) > 0 || len(props.LoggedOutItems) > 0 {
		account := &AccountRegion{
			NavLabel:     p.Sprintf(i18n.KeySecondaryNav),
			TriggerLabel: p.Sprintf(i18n.KeyAccountMenu),
			Avatar: Avatar{
				Src:  props.Avatar,
				Alt:  props.Username,
				Size: "1.5rem",
			},
			LoggedIn: props.LoggedIn,
		}

		if props.LoggedIn {
			account.Items = menu.Flatten(props.UserMenu)
		} else {
			account.Actions = loggedOutActions(props.LoggedOutItems)
		}

		view.Account = account
	}

	return view
}

// loggedOutActions styles every action as secondary except the last one.
func loggedOutActions(items []menu.Descriptor) []Action {
	actions := make([]Action, 0, len(items))

	for idx, item := range items {
		primary := idx == len(items)-1

		class := actionClassSecondary
		if primary {
			class = actionClassPrimary
		}

		actions = append(actions, Action{
			Key:     item.Key(),
			Label:   item.Label,
			Href:    item.Href,
			Class:   class,
			Primary: primary,
		})
	}

	return actions
}

func headerClass(sticky bool) string {
	classes := []string{"site-header-mobile", "d-flex", "justify-content-between", "align-items-center", "shadow"}
	if sticky {
		classes = append(classes, "sticky-top")
	}

	return strings.Join(classes, " ")
}

func brandingClass(minimal bool) string {
	if minimal {
		return "w-100 d-flex justify-content-left pl-3"
	}

	return "w-100 d-flex justify-content-center"
}

type UserDropdownView struct {
	Help        *Link
	ToggleLabel string
	Items       []Link
}

// NewUserDropdownView builds the desktop account dropdown of an
// authenticated user.
func NewUserDropdownView(site Site, p *message.Printer, props DropdownProps) UserDropdownView {
	view := UserDropdownView{
		ToggleLabel: props.Email,
	}

	if view.ToggleLabel == "" {
		view.ToggleLabel = props.Username
	}

	if site.HelpURL != "" {
		view.Help = &Link{
			Label: p.Sprintf(i18n.KeyHelp),
			Href:  site.HelpURL,
		}
	}

	for _, el := range menu.Flatten(AccountMenu(site, p, props.Username)) {
		view.Items = append(view.Items, Link{Label: el.Label, Href: el.Href})
	}

	return view
}
