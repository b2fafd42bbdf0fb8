package middleware

import (
	apimodels "travel-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const (
	ActorHeader = "X-User-ID"
	actorKey    = "actor_id"
)

// ActorRequired ид действующего сотрудника из заголовка X-User-ID; проверка подлинности выполняется снаружи
func ActorRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := ctx.Get(ActorHeader)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("не указан сотрудник"))
		}
		ctx.Locals(actorKey, userID)
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	if userID, ok := ctx.Locals(actorKey).(string); ok {
		return userID
	}
	return ""
}
