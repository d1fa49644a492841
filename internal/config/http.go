package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address           InterpolatedString    `yaml:"address"`
	ReadHeaderTimeout *InterpolatedDuration `yaml:"readHeaderTimeout"`
	ShutdownTimeout   *InterpolatedDuration `yaml:"shutdownTimeout"`
	Debug             InterpolatedBool      `yaml:"debug"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:           "${NAVCHROME_HTTP_ADDRESS:-:8080}",
		ReadHeaderTimeout: NewInterpolatedDuration(10 * time.Second),
		ShutdownTimeout:   NewInterpolatedDuration(10 * time.Second),
		Debug:             false,
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Preview webserver configuration")},
		".address":           []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".readHeaderTimeout": []*yaml.Comment{yaml.HeadComment(" Maximum duration for reading request headers")},
		".shutdownTimeout":   []*yaml.Comment{yaml.HeadComment(" Maximum duration for in-flight requests to complete on shutdown")},
		".debug":             []*yaml.Comment{yaml.HeadComment(" Expose runtime profiles and metrics under /debug")},
	}
}
