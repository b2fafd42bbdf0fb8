package eventapimodels

import (
	"travel-tools-backend/models"
	apimodels "travel-tools-backend/models/api"

	"github.com/pkg/errors"
)

type EventFilter struct {
	FiscalYear        int               `json:"fiscal_year"`         // финансовый год (по году окончания)
	Status            models.TripStatus `json:"status"`              // статус заявки
	UserID            string            `json:"user_id"`             // путешественник
	WaitingOnID       string            `json:"waiting_on_id"`       // от кого ждем решения
	RegisteredEventID string            `json:"registered_event_id"` // мероприятие
	Search            string            `json:"search"`              // поиск по названию, месту назначения, фио
	apimodels.Pagination
}

func (f EventFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.Errorf("неизвестный статус заявки: %v", f.Status)
	}
	return f.Pagination.Validate()
}
