package usershandler

import (
	"travel-tools-backend/db"
	travelusersstore "travel-tools-backend/lib/users/store"
	usersapimodels "travel-tools-backend/models/api/users"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data usersapimodels.TravelUserData) (id, hMsg string, err error)
	Update(id string, data usersapimodels.TravelUserData) (hMsg string, err error)
	GetByID(id string) (item usersapimodels.TravelUserView, err error)
	List(filter usersapimodels.TravelUserFilter) (list []usersapimodels.TravelUserView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: travelusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store travelusersstore.Provider
}

func (i impl) Create(data usersapimodels.TravelUserData) (id, hMsg string, err error) {
	hMsg, err = i.checkEmail(data.Email, "")
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	rec := dbmodels.TravelUser{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		IsActive:    data.IsActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("user_id", id).
		WithField("user_name", rec.GetFullName()).
		Info("создан сотрудник")
	return id, "", nil
}

func (i impl) Update(id string, data usersapimodels.TravelUserData) (hMsg string, err error) {
	logger := log.WithField("user_id", id)
	hMsg, err = i.checkEmail(data.Email, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap := map[string]interface{}{
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"email":        data.Email,
		"phone_number": data.PhoneNumber,
		"is_active":    data.IsActive,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления сотрудника")
		return "", err
	}
	logger.Info("обновлен сотрудник")
	return "", nil
}

func (i impl) GetByID(id string) (item usersapimodels.TravelUserView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.TravelUserView{}, err
	}
	if rec == nil {
		return usersapimodels.TravelUserView{}, errors.New("сотрудник не найден")
	}
	return usersapimodels.TravelUserConvert(*rec), nil
}

func (i impl) List(filter usersapimodels.TravelUserFilter) (list []usersapimodels.TravelUserView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, 0, err
	}
	result := make([]usersapimodels.TravelUserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, usersapimodels.TravelUserConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) checkEmail(email, selfID string) (hMsg string, err error) {
	if email == "" {
		return "", nil
	}
	rec, err := i.store.FindByEmail(email, selfID)
	if err != nil {
		return "", err
	}
	if rec != nil {
		return "сотрудник с такой почтой уже существует", nil
	}
	return "", nil
}
