package apimodels

import "github.com/pkg/errors"

const maxPageLimit = 100

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) Validate() error {
	if r.Page < 0 {
		return errors.New("номер страницы не может быть отрицательным")
	}
	if r.Limit < 0 {
		return errors.New("количество записей на странице не может быть отрицательным")
	}
	if r.Limit > maxPageLimit {
		return errors.Errorf("количество записей на странице не может превышать %v", maxPageLimit)
	}
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// GetOffset смещение первой записи страницы
func (r Pagination) GetOffset() int {
	page, limit := r.GetPage()
	return (page - 1) * limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
