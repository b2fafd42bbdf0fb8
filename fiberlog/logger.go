package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		setRequestID(c)
		err := c.Next()
		d.end = time.Now()
		if c.Method() == "OPTIONS" {
			return err
		}

		message := getMessage(c)
		logger := cfg.Logger
		if logger == nil {
			logger = log.StandardLogger()
		}
		entity := logger.WithFields(getLogrusFields(ftm, c, d))
		entity.Log(getLevel(c.Response().StatusCode()), message)

		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	if route := c.Route(); route != nil && route.Path != "" {
		return "запрос api " + route.Path
	}
	return "запрос api"
}

func getLevel(statusCode int) log.Level {
	switch {
	case statusCode >= fiber.StatusInternalServerError:
		return log.ErrorLevel
	case statusCode >= fiber.StatusMultipleChoices:
		return log.WarnLevel
	}
	return log.InfoLevel
}
