package registeredeventapimodels

import (
	"time"
	apimodels "travel-tools-backend/models/api"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
)

type RegisteredEventData struct {
	Name      string    `json:"name"`       // Название (eng)
	Nom       string    `json:"nom"`        // Название (fre)
	Number    *int      `json:"number"`     // Номер мероприятия
	StartDate time.Time `json:"start_date"` // Дата начала
	EndDate   time.Time `json:"end_date"`   // Дата окончания
}

func (r RegisteredEventData) Validate() error {
	if r.Name == "" {
		return errors.New("отсутсвует название мероприятия")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("не указаны даты мероприятия")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("дата окончания мероприятия раньше даты начала")
	}
	return nil
}

type RegisteredEventView struct {
	RegisteredEventData
	ID        string `json:"id"`
	TripCount int    `json:"trip_count"` // Количество заявок на мероприятие
}

type RegisteredEventFilter struct {
	Search string `json:"search"` // Поиск по названию
	apimodels.Pagination
}

func RegisteredEventConvert(rec dbmodels.RegisteredEvent) RegisteredEventView {
	return RegisteredEventView{
		RegisteredEventData: RegisteredEventData{
			Name:      rec.Name,
			Nom:       rec.Nom,
			Number:    rec.Number,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		},
		ID:        rec.ID,
		TripCount: len(rec.Trips),
	}
}
