package config

import (
	"github.com/bornholm/navchrome/internal/menu"
	"github.com/goccy/go-yaml"
)

type Header struct {
	Logo            InterpolatedString `yaml:"logo"`
	LogoAltText     InterpolatedString `yaml:"logoAltText"`
	LogoDestination InterpolatedString `yaml:"logoDestination"`
	StickyOnMobile  InterpolatedBool   `yaml:"stickyOnMobile"`
	Overrides       InterpolatedString `yaml:"overrides"`
	MainMenu        menu.Input         `yaml:"mainMenu"`
	SecondaryMenu   menu.Input         `yaml:"secondaryMenu"`
	LoggedOutItems  []menu.Descriptor  `yaml:"loggedOutItems"`
}

func NewDefaultHeaderConfig() Header {
	return Header{
		Logo:            "${NAVCHROME_LOGO:-/static/logo.svg}",
		LogoAltText:     "${NAVCHROME_LOGO_ALT_TEXT:-Home}",
		LogoDestination: "${NAVCHROME_LOGO_DESTINATION:-/}",
		StickyOnMobile:  true,
		Overrides:       "${NAVCHROME_HEADER_OVERRIDES}",
		MainMenu: menu.Descriptors(
			menu.Item("Courses", "/courses"),
			menu.Item("Programs", "/programs"),
		),
		SecondaryMenu: menu.Descriptors(
			menu.Item("Help", "/help"),
		),
		LoggedOutItems: []menu.Descriptor{
			menu.Item("Sign in", "/login"),
			menu.Item("Register", "/register"),
		},
	}
}

func NewHeaderConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                 []*yaml.Comment{yaml.HeadComment(" Mobile header configuration")},
		".logo":            []*yaml.Comment{yaml.HeadComment(" Logo image URL")},
		".logoDestination": []*yaml.Comment{yaml.HeadComment(" Link target of the logo")},
		".stickyOnMobile":  []*yaml.Comment{yaml.HeadComment(" Keep the header at the top of the viewport on narrow screens")},
		".overrides":       []*yaml.Comment{yaml.HeadComment(" Directory of *.gohtml files replacing header templates, i.e. the 'logo' slot")},
		".mainMenu": []*yaml.Comment{yaml.HeadComment(
			" Main menu, either a list of entries or a raw HTML fragment",
			" Entry fields: type (item|menu), content, href, submenuContent, disabled, isActive, onClick",
		)},
		".secondaryMenu":  []*yaml.Comment{yaml.HeadComment(" Secondary menu, appended after the main menu")},
		".loggedOutItems": []*yaml.Comment{yaml.HeadComment(" Calls to action shown to anonymous visitors, the last one is highlighted")},
	}
}
