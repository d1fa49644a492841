package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var getEnv = os.Getenv

// interpolate decodes the scalar as a string and expands the environment
// variables it references (${VAR}, ${VAR:-default}).
func interpolate(unmarshal func(any) error) (string, error) {
	var str string

	if err := unmarshal(&str); err != nil {
		return "", errors.WithStack(err)
	}

	str, err := envsubst.Eval(str, getEnv)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return str, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolate(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(str)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolate(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	if str == "" {
		*ii = 0
		return nil
	}

	intVal, err := strconv.ParseInt(str, 10, 32)
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(int(intVal))

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolate(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	if str == "" {
		*ifl = 0
		return nil
	}

	floatVal, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(floatVal)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

// InterpolatedBool treats an empty value as false, so that optional flags
// can reference unset variables.
type InterpolatedBool bool

func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolate(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	if str == "" {
		*ib = false
		return nil
	}

	boolVal, err := strconv.ParseBool(str)
	if err != nil {
		return errors.WithStack(err)
	}

	*ib = InterpolatedBool(boolVal)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

type InterpolatedDuration time.Duration

func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolate(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	duration, err := time.ParseDuration(str)
	if err != nil {
		nanoseconds, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return errors.WithStack(err)
		}

		duration = time.Duration(nanoseconds)
	}

	*id = InterpolatedDuration(duration)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	duration := time.Duration(*id)

	return duration.String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}
