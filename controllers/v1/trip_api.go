package apiv1

import (
	"travel-tools-backend/controllers"
	eventhandler "travel-tools-backend/lib/event"
	"travel-tools-backend/middleware"
	"travel-tools-backend/models"
	apimodels "travel-tools-backend/models/api"
	eventapimodels "travel-tools-backend/models/api/event"

	"github.com/gofiber/fiber/v2"
)

type tripApiController struct {
	controllers.BaseAPIController
}

func InitTripApiRouters(app *fiber.App) {
	controller := tripApiController{}
	app.Route("trips", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("submit", controller.submit)          // отправить на согласование
			idRoute.Put("unsubmit", controller.unsubmit)      // вернуть в черновик
			idRoute.Put("approvers", controller.setApprovers) // назначить согласующих
			idRoute.Put(":role/approve", controller.approve)  // согласовать этап
			idRoute.Put(":role/deny", controller.deny)        // отказать на этапе
			idRoute.Post("duplicate", controller.duplicate)   // скопировать в новый черновик
			idRoute.Get("history", controller.history)
		})
	})
}

// @Summary Создание
// @Tags Заявка на поездку
// @Description Создание черновика заявки
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.EventData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips [post]
func (c *tripApiController) create(ctx *fiber.Ctx) error {
	var payload eventapimodels.EventData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := eventhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Заявка на поездку
// @Description Обновление
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.EventData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id} [put]
func (c *tripApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload eventapimodels.EventData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := eventhandler.Instance.Update(id, userID, payload)
	return c.sendResult(ctx, hMsg, err, "Ошибка обновления заявки")
}

// @Summary Получение по ИД
// @Tags Заявка на поездку
// @Description Получение по ИД
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=eventapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id} [get]
func (c *tripApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := eventhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Заявка на поездку
// @Description Удаление
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id} [delete]
func (c *tripApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := eventhandler.Instance.Delete(id)
	return c.sendResult(ctx, hMsg, err, "Ошибка удаления заявки")
}

// @Summary Список
// @Tags Заявка на поездку
// @Description Список
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.EventFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]eventapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/list [post]
func (c *tripApiController) list(ctx *fiber.Ctx) error {
	var payload eventapimodels.EventFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := eventhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отправить на согласование
// @Tags Заявка на поездку
// @Description Отправить на согласование, запрос уходит первому назначенному согласующему
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/submit [put]
func (c *tripApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := eventhandler.Instance.Submit(id, middleware.GetUserID(ctx))
	return c.sendResult(ctx, hMsg, err, "Ошибка отправки заявки на согласование")
}

// @Summary Вернуть в черновик
// @Tags Заявка на поездку
// @Description Вернуть в черновик, решения согласующих сбрасываются
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/unsubmit [put]
func (c *tripApiController) unsubmit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := eventhandler.Instance.Unsubmit(id, middleware.GetUserID(ctx))
	return c.sendResult(ctx, hMsg, err, "Ошибка возврата заявки в черновик")
}

// @Summary Назначить согласующих
// @Tags Заявка на поездку
// @Description Назначить согласующих по этапам
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.EventApproversData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/approvers [put]
func (c *tripApiController) setApprovers(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload eventapimodels.EventApproversData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := eventhandler.Instance.SetApprovers(id, middleware.GetUserID(ctx), payload)
	return c.sendResult(ctx, hMsg, err, "Ошибка назначения согласующих")
}

// @Summary Согласовать этап
// @Tags Заявка на поездку
// @Description Согласовать этап (recommender_1, recommender_2, recommender_3, adm, rdg)
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   role          		path    string  				    	true         "approval role"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/{role}/approve [put]
func (c *tripApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.DecisionApprove)
}

// @Summary Отказать на этапе
// @Tags Заявка на поездку
// @Description Отказать на этапе, комментарий обязателен
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param	body body	 eventapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   role          		path    string  				    	true         "approval role"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/{role}/deny [put]
func (c *tripApiController) deny(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.DecisionDeny)
}

func (c *tripApiController) decide(ctx *fiber.Ctx, decision models.ApprovalDecision) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	role, err := c.GetIDByKey(ctx, "role")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload eventapimodels.ApprovalDecisionData
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	if err = payload.Validate(decision); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	hMsg, err := eventhandler.Instance.Decide(id, models.ApprovalRole(role), userID, decision, payload.Comment)
	return c.sendResult(ctx, hMsg, err, "Ошибка сохранения решения по заявке")
}

// @Summary Копировать
// @Tags Заявка на поездку
// @Description Копировать заявку в новый черновик
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/duplicate [post]
func (c *tripApiController) duplicate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	newID, hMsg, err := eventhandler.Instance.Duplicate(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка копирования заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(newID))
}

// @Summary История согласования
// @Tags Заявка на поездку
// @Description История согласования
// @Param   X-User-ID		header		string	true	"Actor user ID"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]eventapimodels.EventHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trips/{id}/history [get]
func (c *tripApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := eventhandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *tripApiController) sendResult(ctx *fiber.Ctx, hMsg string, err error, logMsg string) error {
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, logMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
