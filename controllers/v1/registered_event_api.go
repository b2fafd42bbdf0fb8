package apiv1

import (
	"travel-tools-backend/controllers"
	registeredeventhandler "travel-tools-backend/lib/registered-event"
	apimodels "travel-tools-backend/models/api"
	registeredeventapimodels "travel-tools-backend/models/api/registered-event"

	"github.com/gofiber/fiber/v2"
)

type registeredEventApiController struct {
	controllers.BaseAPIController
}

func InitRegisteredEventApiRouters(app *fiber.App) {
	controller := registeredEventApiController{}
	app.Route("registered_events", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Get("travellers", controller.travellers) // участники без заявок с отказом
		})
	})
}

// @Summary Создание
// @Tags Мероприятие
// @Description Создание
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 registeredeventapimodels.RegisteredEventData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registered_events [post]
func (c *registeredEventApiController) create(ctx *fiber.Ctx) error {
	var payload registeredeventapimodels.RegisteredEventData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := registeredeventhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания мероприятия")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Мероприятие
// @Description Обновление
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 registeredeventapimodels.RegisteredEventData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registered_events/{id} [put]
func (c *registeredEventApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload registeredeventapimodels.RegisteredEventData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := registeredeventhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления мероприятия")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Мероприятие
// @Description Получение по ИД
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=registeredeventapimodels.RegisteredEventView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registered_events/{id} [get]
func (c *registeredEventApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := registeredeventhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения мероприятия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Мероприятие
// @Description Список
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 registeredeventapimodels.RegisteredEventFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]registeredeventapimodels.RegisteredEventView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registered_events/list [post]
func (c *registeredEventApiController) list(ctx *fiber.Ctx) error {
	var payload registeredeventapimodels.RegisteredEventFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := registeredeventhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка мероприятий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Участники
// @Tags Мероприятие
// @Description Участники мероприятия, заявки с отказом не учитываются
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registered_events/{id}/travellers [get]
func (c *registeredEventApiController) travellers(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := registeredeventhandler.Instance.Travellers(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения участников мероприятия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
