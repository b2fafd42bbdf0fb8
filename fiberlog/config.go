package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string

	// MaxBodySize ограничение размера тела запроса/ответа в логе, 0 - без ограничения
	MaxBodySize int
}

// ConfigDefault is the default config
var ConfigDefault Config = Config{
	Logger:      nil,
	MaxBodySize: 2048,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
