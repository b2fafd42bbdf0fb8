package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"travel-tools-backend/fiberlog"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет сведения об ответах 5xx на адрес addr (webhook дежурных)
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		body := string(c.Response().Body())
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("не удалось разобрать тело ответа для уведомления об ошибке")
		}
		msg := data.Message
		if msg == "" {
			msg = body
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload := fmt.Sprintf(`{"code":%d,"method":%q,"path":%q,"request_id":%q,"actor":%q,"error":%q}`,
			statusCode, c.Method(), path, fiberlog.GetRequestID(c), GetUserID(c), msg)

		go func() {
			resp, reqErr := http.Post(addr, "application/json", strings.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
