package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	app := fiber.New()
	app.Use(New(Config{
		Logger:      logger,
		MaxBodySize: 10,
		Tags:        []string{TagStatus, TagMethod, TagBody, TagActor, RequestID},
	}))
	app.Post("/trips/:id", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	})
	return app
}

func readEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	entry := map[string]interface{}{}
	require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger(t *testing.T) {
	t.Run(`fields check`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf)
		req := httptest.NewRequest("POST", "/trips/1", strings.NewReader(`{"trip_title":"Annual science meeting"}`))
		req.Header.Set("X-User-ID", "user-id")
		req.Header.Set("X-Request-ID", "req-1")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))

		entry := readEntry(t, buf)
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "запрос api /trips/:id", entry["msg"])
		require.Equal(t, "POST", entry[TagMethod])
		require.Equal(t, "user-id", entry[TagActor])
		require.Equal(t, "req-1", entry[RequestID])
		require.Equal(t, `{"trip_tit...`, entry[TagBody])
		require.Equal(t, float64(200), entry[TagStatus])
	})

	t.Run(`request id generated check`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf)
		resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.Nil(t, err)
		requestID := resp.Header.Get("X-Request-ID")
		require.NotEmpty(t, requestID)

		entry := readEntry(t, buf)
		require.Equal(t, "error", entry["level"])
		require.Equal(t, requestID, entry[RequestID])
		_, ok := entry[TagActor]
		require.False(t, ok)
	})
}

func TestGetLevel(t *testing.T) {
	require.Equal(t, log.InfoLevel, getLevel(200))
	require.Equal(t, log.WarnLevel, getLevel(400))
	require.Equal(t, log.ErrorLevel, getLevel(503))
}
