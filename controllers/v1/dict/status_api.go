package dict

import (
	"travel-tools-backend/controllers"
	statusprovider "travel-tools-backend/lib/dicts/status"
	"travel-tools-backend/models"
	apimodels "travel-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type statusDictApiController struct {
	controllers.BaseAPIController
}

func InitStatusDictApiRouters(app *fiber.App) {
	controller := statusDictApiController{}
	app.Route("status", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Список статусов
// @Tags Справочник. Статусы
// @Description Список статусов, used_for: 1 - этапы согласования, 2 - заявки
// @Param   used_for          		query    int  				    	false         "used for"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.StatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/status [get]
func (c *statusDictApiController) list(ctx *fiber.Ctx) error {
	usedFor := models.StatusUsedFor(ctx.QueryInt("used_for", 0))
	if usedFor != 0 && usedFor.ToHuman() == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестное назначение статуса"))
	}
	list, err := statusprovider.Instance.List(usedFor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка статусов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
