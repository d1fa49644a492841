package menu

import (
	"html/template"
	"strings"
)

// Element is a normalized, ready to render menu entry.
type Element struct {
	Key            string
	Kind           Kind
	Label          string
	Href           string
	Class          string
	OnActivate     template.JS
	SubmenuContent template.HTML
}

func (e Element) IsMenu() bool {
	return e.Kind == KindMenu
}

// Rendered is the result of Normalize: either the pre-rendered node of the
// input, untouched, or one element per descriptor.
type Rendered struct {
	Node     template.HTML
	Elements []Element
}

func (r Rendered) IsNode() bool {
	return r.Node != ""
}

func (r Rendered) Len() int {
	if r.IsNode() {
		return 1
	}

	return len(r.Elements)
}

func Normalize(input Input) Rendered {
	if input.prerendered {
		return Rendered{Node: input.node}
	}

	elements := make([]Element, 0, len(input.descriptors))
	for _, d := range input.descriptors {
		elements = append(elements, newElement(d))
	}

	return Rendered{Elements: elements}
}

// Flatten merges the items of every group into a single list, in group then
// item order. Group headings are not part of the output.
func Flatten(groups []Group) []Element {
	count := 0
	for _, g := range groups {
		count += len(g.Items)
	}

	elements := make([]Element, 0, count)
	for _, g := range groups {
		for _, d := range g.Items {
			elements = append(elements, Element{
				Key:        d.Key(),
				Kind:       d.Kind,
				Label:      d.Label,
				Href:       d.Href,
				Class:      LinkClass(d),
				OnActivate: d.OnActivate,
			})
		}
	}

	return elements
}

func newElement(d Descriptor) Element {
	element := Element{
		Key:        d.Key(),
		Kind:       d.Kind,
		Label:      d.Label,
		OnActivate: d.OnActivate,
	}

	if d.Kind == KindItem {
		element.Href = d.Href
		element.Class = LinkClass(d)
		return element
	}

	element.Kind = KindMenu
	element.Class = "nav-link"
	element.SubmenuContent = d.SubmenuContent

	return element
}

// LinkClass returns the classes of a navigation link reflecting the
// disabled and active states of the descriptor.
func LinkClass(d Descriptor) string {
	var sb strings.Builder

	sb.WriteString("nav-link")

	if d.Disabled {
		sb.WriteString(" disabled")
	}

	if d.Active {
		sb.WriteString(" active")
	}

	return sb.String()
}

// ID returns a DOM identifier derived from the element key, suitable for
// aria-controls pairs. It is stable across renders.
func (e Element) ID(prefix string) string {
	var sb strings.Builder

	sb.WriteString(prefix)
	sb.WriteByte('-')

	for _, r := range strings.ToLower(e.Key) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}

	return sb.String()
}
