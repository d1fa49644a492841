package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func TestInterpolatedValues(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed interpolatedValues)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-values.yml",
			Env: map[string]string{
				"TEST_BASE_URL": "https://lms.example.com",
				"TEST_FLAG":     "true",
				"TEST_BURST":    "42",
			},
			Assert: func(t *testing.T, parsed interpolatedValues) {
				if e, g := "https://lms.example.com/dashboard", string(parsed.URL); e != g {
					t.Errorf("parsed.URL: expected '%v', got '%v'", e, g)
				}

				if e, g := true, bool(parsed.Flag); e != g {
					t.Errorf("parsed.Flag: expected '%v', got '%v'", e, g)
				}

				if e, g := 2.5, float64(parsed.Rate); e != g {
					t.Errorf("parsed.Rate: expected '%v', got '%v'", e, g)
				}

				if e, g := 42, int(parsed.Burst); e != g {
					t.Errorf("parsed.Burst: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-values.yml",
			Env:  map[string]string{},
			Assert: func(t *testing.T, parsed interpolatedValues) {
				if e, g := "http://localhost/dashboard", string(parsed.URL); e != g {
					t.Errorf("parsed.URL: expected '%v', got '%v'", e, g)
				}

				if e, g := false, bool(parsed.Flag); e != g {
					t.Errorf("parsed.Flag: expected '%v', got '%v'", e, g)
				}

				if e, g := 0, int(parsed.Burst); e != g {
					t.Errorf("parsed.Burst: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(t, tc.Env)

			var parsed interpolatedValues

			if err := yaml.Unmarshal(data, &parsed); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, parsed)
			}
		})
	}
}

func TestInterpolatedDuration(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed *InterpolatedDuration)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-duration.yml",
			Env: map[string]string{
				"MY_DURATION": "30s",
			},
			Assert: func(t *testing.T, parsed *InterpolatedDuration) {
				if e, g := 30*time.Second, parsed; e != time.Duration(*g) {
					t.Errorf("parsed: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-duration.yml",
			Env: map[string]string{
				"MY_DURATION": "1000",
			},
			Assert: func(t *testing.T, parsed *InterpolatedDuration) {
				if e, g := time.Microsecond, parsed; e != time.Duration(*g) {
					t.Errorf("parsed: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(t, tc.Env)

			config := struct {
				Duration *InterpolatedDuration `yaml:"duration"`
			}{
				Duration: NewInterpolatedDuration(-1),
			}

			if err := yaml.Unmarshal(data, &config); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, config.Duration)
			}
		})
	}
}

type interpolatedValues struct {
	URL   InterpolatedString `yaml:"url"`
	Flag  InterpolatedBool   `yaml:"flag"`
	Rate  InterpolatedFloat  `yaml:"rate"`
	Burst InterpolatedInt    `yaml:"burst"`
}

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()

	previous := getEnv
	getEnv = func(key string) string {
		return env[key]
	}

	t.Cleanup(func() {
		getEnv = previous
	})
}
