package menu

import "html/template"

type Kind string

const (
	KindItem Kind = "item"
	KindMenu Kind = "menu"
)

// Descriptor describes one navigable entry before rendering.
//
// An item is expected to carry an Href or an OnActivate handler and a menu is
// expected to carry SubmenuContent. Neither is validated: a missing target
// renders as an inert link.
type Descriptor struct {
	Kind           Kind          `yaml:"type"`
	Label          string        `yaml:"content"`
	Href           string        `yaml:"href,omitempty"`
	SubmenuContent template.HTML `yaml:"submenuContent,omitempty"`
	Disabled       bool          `yaml:"disabled,omitempty"`
	Active         bool          `yaml:"isActive,omitempty"`
	OnActivate     template.JS   `yaml:"onClick,omitempty"`
}

// Key identifies the descriptor within its menu. Keys are assumed unique.
func (d Descriptor) Key() string {
	return string(d.Kind) + "-" + d.Label
}

func Item(label, href string) Descriptor {
	return Descriptor{
		Kind:  KindItem,
		Label: label,
		Href:  href,
	}
}

func Submenu(label string, content template.HTML) Descriptor {
	return Descriptor{
		Kind:           KindMenu,
		Label:          label,
		SubmenuContent: content,
	}
}

// Group is an ordered list of descriptors under an optional heading.
type Group struct {
	Heading string       `yaml:"heading,omitempty"`
	Items   []Descriptor `yaml:"items"`
}
