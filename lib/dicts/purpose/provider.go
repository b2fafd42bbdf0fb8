package purposeprovider

import (
	"travel-tools-backend/db"
	purposestore "travel-tools-backend/lib/dicts/purpose/store"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request dictapimodels.PurposeData) (id, hMsg string, err error)
	Update(id string, request dictapimodels.PurposeData) (hMsg string, err error)
	Get(id string) (item dictapimodels.PurposeView, err error)
	List(filter dictapimodels.DictFind) (list []dictapimodels.PurposeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: purposestore.NewInstance(db.DB),
	}
}

type impl struct {
	store purposestore.Provider
}

func (i impl) Create(request dictapimodels.PurposeData) (id, hMsg string, err error) {
	found, err := i.store.IsUnique("", request.Name)
	if err != nil {
		return "", "", err
	}
	if found {
		return "", "цель поездки уже существует", nil
	}
	rec := dbmodels.Purpose{
		Name:           request.Name,
		Nom:            request.Nom,
		DescriptionEng: request.DescriptionEng,
		DescriptionFre: request.DescriptionFre,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("purpose_name", rec.Name).
		WithField("rec_id", id).
		Info("создана цель поездки")
	return id, "", nil
}

func (i impl) Update(id string, request dictapimodels.PurposeData) (hMsg string, err error) {
	found, err := i.store.IsUnique(id, request.Name)
	if err != nil {
		return "", err
	}
	if found {
		return "цель поездки уже существует", nil
	}
	updMap := map[string]interface{}{
		"name":            request.Name,
		"nom":             request.Nom,
		"description_eng": request.DescriptionEng,
		"description_fre": request.DescriptionFre,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлена цель поездки")
	return "", nil
}

func (i impl) Get(id string) (item dictapimodels.PurposeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.PurposeView{}, err
	}
	if rec == nil {
		return dictapimodels.PurposeView{}, errors.New("цель поездки не найдена")
	}
	return dictapimodels.PurposeConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFind) (list []dictapimodels.PurposeView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.PurposeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.PurposeConvert(rec))
	}
	return result, nil
}
