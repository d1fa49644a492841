package header

import "github.com/bornholm/navchrome/internal/menu"

// Props is the input of the mobile header. It is built by the caller for
// each render and never mutated.
type Props struct {
	Logo            string
	LogoAltText     string
	LogoDestination string

	LoggedIn bool
	Avatar   string
	Username string

	StickyOnMobile bool

	MainMenu       menu.Input
	SecondaryMenu  menu.Input
	UserMenu       []menu.Group
	LoggedOutItems []menu.Descriptor
}

func NewProps() Props {
	return Props{
		StickyOnMobile: true,
		UserMenu:       []menu.Group{},
		LoggedOutItems: []menu.Descriptor{},
	}
}

// DropdownProps is the input of the authenticated user dropdown.
type DropdownProps struct {
	Username string
	Email    string
}
