package registeredeventhandler

import (
	"travel-tools-backend/db"
	eventstore "travel-tools-backend/lib/event/store"
	registeredeventstore "travel-tools-backend/lib/registered-event/store"
	"travel-tools-backend/models"
	registeredeventapimodels "travel-tools-backend/models/api/registered-event"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data registeredeventapimodels.RegisteredEventData) (id, hMsg string, err error)
	Update(id string, data registeredeventapimodels.RegisteredEventData) (hMsg string, err error)
	Get(id string) (item registeredeventapimodels.RegisteredEventView, err error)
	List(filter registeredeventapimodels.RegisteredEventFilter) (list []registeredeventapimodels.RegisteredEventView, rowCount int64, err error)
	Travellers(id string) (list []string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      registeredeventstore.NewInstance(db.DB),
		eventStore: eventstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      registeredeventstore.Provider
	eventStore eventstore.Provider
}

func (i impl) Create(data registeredeventapimodels.RegisteredEventData) (id, hMsg string, err error) {
	found, err := i.store.IsUnique("", data.Name)
	if err != nil {
		return "", "", err
	}
	if found {
		return "", "мероприятие с таким названием уже существует", nil
	}
	rec := dbmodels.RegisteredEvent{
		Name:      data.Name,
		Nom:       data.Nom,
		Number:    data.Number,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("rec_id", id).
		WithField("registered_event_name", rec.Name).
		Info("создано мероприятие")
	return id, "", nil
}

func (i impl) Update(id string, data registeredeventapimodels.RegisteredEventData) (hMsg string, err error) {
	logger := log.WithField("rec_id", id)
	found, err := i.store.IsUnique(id, data.Name)
	if err != nil {
		return "", err
	}
	if found {
		return "мероприятие с таким названием уже существует", nil
	}
	updMap := map[string]interface{}{
		"name":       data.Name,
		"nom":        data.Nom,
		"number":     data.Number,
		"start_date": data.StartDate,
		"end_date":   data.EndDate,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления мероприятия")
		return "", err
	}
	logger.Info("обновлено мероприятие")
	return "", nil
}

func (i impl) Get(id string) (item registeredeventapimodels.RegisteredEventView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return registeredeventapimodels.RegisteredEventView{}, err
	}
	if rec == nil {
		return registeredeventapimodels.RegisteredEventView{}, errors.New("мероприятие не найдено")
	}
	return registeredeventapimodels.RegisteredEventConvert(*rec), nil
}

func (i impl) List(filter registeredeventapimodels.RegisteredEventFilter) (list []registeredeventapimodels.RegisteredEventView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка мероприятий")
		return nil, 0, err
	}
	result := make([]registeredeventapimodels.RegisteredEventView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, registeredeventapimodels.RegisteredEventConvert(rec))
	}
	return result, rowCount, nil
}

// Travellers участники мероприятия без повторов; заявки с отказом не учитываются
func (i impl) Travellers(id string) (list []string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("мероприятие не найдено")
	}
	trips, err := i.eventStore.ListByRegisteredEvent(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения заявок мероприятия")
		return nil, err
	}
	list = []string{}
	seen := map[string]bool{}
	for _, trip := range trips {
		if trip.Status == models.TripStatusDenied {
			continue
		}
		key := trip.GetTravellerName()
		if trip.UserID != nil {
			key = *trip.UserID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, trip.GetTravellerName())
	}
	return list, nil
}
