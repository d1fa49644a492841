package config

import "github.com/goccy/go-yaml"

type Site struct {
	LMSBaseURL         InterpolatedString `yaml:"lmsBaseUrl"`
	AccountProfileURL  InterpolatedString `yaml:"accountProfileUrl"`
	AccountSettingsURL InterpolatedString `yaml:"accountSettingsUrl"`
	OrderHistoryURL    InterpolatedString `yaml:"orderHistoryUrl"`
	LogoutURL          InterpolatedString `yaml:"logoutUrl"`
	HelpURL            InterpolatedString `yaml:"helpUrl"`
	MinimalHeader      InterpolatedBool   `yaml:"minimalHeader"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		LMSBaseURL:         "${LMS_BASE_URL:-http://localhost:18000}",
		AccountProfileURL:  "${ACCOUNT_PROFILE_URL:-http://localhost:1995}",
		AccountSettingsURL: "${ACCOUNT_SETTINGS_URL:-http://localhost:1997}",
		OrderHistoryURL:    "${ORDER_HISTORY_URL}",
		LogoutURL:          "${LOGOUT_URL:-http://localhost:18000/logout}",
		HelpURL:            "${HELP_URL}",
		MinimalHeader:      false,
	}
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                    []*yaml.Comment{yaml.HeadComment(" Links of the hosting site")},
		".lmsBaseUrl":         []*yaml.Comment{yaml.HeadComment(" Base URL of the LMS, the dashboard lives under it")},
		".accountProfileUrl":  []*yaml.Comment{yaml.HeadComment(" Base URL of the profile pages, '/u/<username>' is appended")},
		".accountSettingsUrl": []*yaml.Comment{yaml.HeadComment(" Account settings page")},
		".orderHistoryUrl":    []*yaml.Comment{yaml.HeadComment(" Order history page, leave empty to hide the entry")},
		".logoutUrl":          []*yaml.Comment{yaml.HeadComment(" Sign out URL")},
		".helpUrl":            []*yaml.Comment{yaml.HeadComment(" Help center, leave empty to hide the link")},
		".minimalHeader":      []*yaml.Comment{yaml.HeadComment(" Align the logo to the left instead of centering it", " Can reference the environment, i.e. '${AUTHN_MINIMAL_HEADER:-false}'")},
	}
}
