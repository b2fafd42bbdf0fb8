package reasonprovider

import (
	"travel-tools-backend/db"
	reasonstore "travel-tools-backend/lib/dicts/reason/store"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var DefaultReasons = []dictapimodels.DictItemData{
	{Name: "Conference", Nom: "Conférence"},
	{Name: "Training", Nom: "Formation"},
	{Name: "Field work", Nom: "Travail sur le terrain"},
	{Name: "Meeting", Nom: "Réunion"},
	{Name: "Other", Nom: "Autre"},
}

type Provider interface {
	Create(request dictapimodels.DictItemData) (id, hMsg string, err error)
	Update(id string, request dictapimodels.DictItemData) (hMsg string, err error)
	Get(id string) (item dictapimodels.DictItemView, err error)
	List(filter dictapimodels.DictFind) (list []dictapimodels.DictItemView, err error)
	FillDefaults() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: reasonstore.NewInstance(db.DB),
	}
}

type impl struct {
	store reasonstore.Provider
}

func (i impl) Create(request dictapimodels.DictItemData) (id, hMsg string, err error) {
	found, err := i.store.IsUnique("", request.Name)
	if err != nil {
		return "", "", err
	}
	if found {
		return "", "причина поездки уже существует", nil
	}
	rec := dbmodels.Reason{
		Name: request.Name,
		Nom:  request.Nom,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("reason_name", rec.Name).
		WithField("rec_id", id).
		Info("создана причина поездки")
	return id, "", nil
}

func (i impl) Update(id string, request dictapimodels.DictItemData) (hMsg string, err error) {
	found, err := i.store.IsUnique(id, request.Name)
	if err != nil {
		return "", err
	}
	if found {
		return "причина поездки уже существует", nil
	}
	updMap := map[string]interface{}{
		"name": request.Name,
		"nom":  request.Nom,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлена причина поездки")
	return "", nil
}

func (i impl) Get(id string) (item dictapimodels.DictItemView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	if rec == nil {
		return dictapimodels.DictItemView{}, errors.New("причина поездки не найдена")
	}
	return dictapimodels.ReasonConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFind) (list []dictapimodels.DictItemView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DictItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.ReasonConvert(rec))
	}
	return result, nil
}

// FillDefaults добавляет недостающие значения по умолчанию
func (i impl) FillDefaults() error {
	for _, item := range DefaultReasons {
		// запись уже есть, если вернулось сообщение о дубле
		_, _, err := i.Create(item)
		if err != nil {
			return errors.Wrap(err, "ошибка заполнения справочника причин поездки")
		}
	}
	return nil
}
