package i18n

// Message keys looked up by the header components.
const (
	KeyMainHeader   = "header.label.main.header"
	KeySkipNav      = "header.label.skip.nav"
	KeyMainMenu     = "header.label.main.menu"
	KeyMainNav      = "header.label.main.nav"
	KeySecondaryNav = "header.label.secondary.nav"
	KeyAccountMenu  = "header.label.account.menu"

	KeyDashboard       = "header.user.menu.dashboard"
	KeyProfile         = "header.user.menu.profile"
	KeyAccountSettings = "header.user.menu.account.settings"
	KeyOrderHistory    = "header.user.menu.order.history"
	KeyLogout          = "header.user.menu.logout"
	KeyHelp            = "header.help"
)
