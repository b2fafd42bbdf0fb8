package usersapimodels

import (
	"strings"
	apimodels "travel-tools-backend/models/api"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
)

type TravelUserData struct {
	FirstName   string `json:"first_name"`   // Имя
	LastName    string `json:"last_name"`    // Фамилия
	Email       string `json:"email"`        // Почта, на нее уходят запросы на согласование
	PhoneNumber string `json:"phone_number"` // Телефон
	IsActive    bool   `json:"is_active"`    // Активен
}

func (r TravelUserData) Validate() error {
	if r.FirstName == "" {
		return errors.New("отсутсвует имя")
	}
	if r.LastName == "" {
		return errors.New("отсутсвует фамилия")
	}
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return errors.New("некорректный адрес почты")
	}
	return nil
}

type TravelUserView struct {
	TravelUserData
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type TravelUserFilter struct {
	Search     string `json:"search"`      // Поиск по фио и почте
	ActiveOnly bool   `json:"active_only"` // Только активные
	apimodels.Pagination
}

func TravelUserConvert(rec dbmodels.TravelUser) TravelUserView {
	return TravelUserView{
		TravelUserData: TravelUserData{
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			Email:       rec.Email,
			PhoneNumber: rec.PhoneNumber,
			IsActive:    rec.IsActive,
		},
		ID:       rec.ID,
		FullName: rec.GetFullName(),
	}
}
