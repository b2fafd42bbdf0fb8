package triproleprovider

import (
	"travel-tools-backend/db"
	triprolestore "travel-tools-backend/lib/dicts/trip-role/store"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultRoles роли участника поездки, добавляются при первом запуске
var DefaultRoles = []dictapimodels.DictItemData{
	{Name: "Attendee", Nom: "Participant"},
	{Name: "Speaker/Presenter", Nom: "Conférencier/Présentateur"},
	{Name: "Organizer", Nom: "Organisateur"},
	{Name: "Chair/Co-chair", Nom: "Président/Co-président"},
	{Name: "Delegate", Nom: "Délégué"},
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
		store: triprolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store triprolestore.Provider
}

func (i impl) Create(request dictapimodels.DictItemData) (id, hMsg string, err error) {
	found, err := i.store.IsUnique("", request.Name)
	if err != nil {
		return "", "", err
	}
	if found {
		return "", "роль участника уже существует", nil
	}
	rec := dbmodels.Role{
		Name: request.Name,
		Nom:  request.Nom,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("role_name", rec.Name).
		WithField("rec_id", id).
		Info("создана роль участника")
	return id, "", nil
}

func (i impl) Update(id string, request dictapimodels.DictItemData) (hMsg string, err error) {
	found, err := i.store.IsUnique(id, request.Name)
	if err != nil {
		return "", err
	}
	if found {
		return "роль участника уже существует", nil
	}
	updMap := map[string]interface{}{
		"name": request.Name,
		"nom":  request.Nom,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлена роль участника")
	return "", nil
}

func (i impl) Get(id string) (item dictapimodels.DictItemView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	if rec == nil {
		return dictapimodels.DictItemView{}, errors.New("роль участника не найдена")
	}
	return dictapimodels.RoleConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFind) (list []dictapimodels.DictItemView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DictItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.RoleConvert(rec))
	}
	return result, nil
}

// FillDefaults добавляет недостающие значения по умолчанию
func (i impl) FillDefaults() error {
	for _, item := range DefaultRoles {
		// запись уже есть, если вернулось сообщение о дубле
		_, _, err := i.Create(item)
		if err != nil {
			return errors.Wrap(err, "ошибка заполнения справочника ролей участника")
		}
	}
	return nil
}
