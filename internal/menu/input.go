package menu

import (
	"html/template"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Input is either a pre-rendered node or a list of descriptors. The zero
// value is an empty descriptor list.
type Input struct {
	node        template.HTML
	prerendered bool
	descriptors []Descriptor
}

func Prerendered(node template.HTML) Input {
	return Input{node: node, prerendered: true}
}

func Descriptors(descriptors ...Descriptor) Input {
	return Input{descriptors: descriptors}
}

func (i Input) IsPrerendered() bool {
	return i.prerendered
}

// Len returns the number of descriptors, a pre-rendered node counting as one.
func (i Input) Len() int {
	if i.prerendered {
		if i.node == "" {
			return 0
		}

		return 1
	}

	return len(i.descriptors)
}

func (i Input) IsEmpty() bool {
	return i.Len() == 0
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
//
// A scalar is read as a pre-rendered HTML fragment, a sequence as a list of
// descriptors.
func (i *Input) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return errors.WithStack(err)
	}

	switch typ := raw.(type) {
	case nil:
		*i = Descriptors()
		return nil
	case string:
		*i = Prerendered(template.HTML(typ))
		return nil
	}

	var descriptors []Descriptor
	if err := unmarshal(&descriptors); err != nil {
		return errors.WithStack(err)
	}

	*i = Descriptors(descriptors...)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(Input)

// MarshalYAML implements yaml.InterfaceMarshaler.
func (i Input) MarshalYAML() (any, error) {
	if i.prerendered {
		return string(i.node), nil
	}

	if i.descriptors == nil {
		return []Descriptor{}, nil
	}

	return i.descriptors, nil
}

var _ yaml.InterfaceMarshaler = Input{}
