package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagPid        = "pid"
	TagLatency    = "latency"
	TagStatus     = "status"
	TagMethod     = "method"
	TagPath       = "path"
	TagURL        = "url"
	TagIP         = "ip"
	TagUserAgent  = "ua"
	TagBody       = "body"
	TagResBody    = "resBody"
	TagActor      = "actor"
	RequestID     = "request_id"
	requestHeader = "X-Request-ID"
	actorHeader   = "X-User-ID"
)

// FuncTag вычисляет значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// GetRequestID ид запроса из заголовка X-Request-ID или сгенерированный middleware
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestID).(string); ok && id != "" {
		return id
	}
	return c.Get(requestHeader)
}

func setRequestID(c *fiber.Ctx) {
	id := c.Get(requestHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(RequestID, id)
	c.Set(requestHeader, id)
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagUserAgent: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return truncate(c.Body(), cfg.MaxBodySize)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return truncate(c.Response().Body(), cfg.MaxBodySize)
		},
		TagActor: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(actorHeader)
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return GetRequestID(c)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// truncate обрезает тело запроса/ответа до size байт, 0 - без ограничения
func truncate(body []byte, size int) string {
	if size <= 0 || len(body) <= size {
		return string(body)
	}
	return string(body[:size]) + "..."
}
