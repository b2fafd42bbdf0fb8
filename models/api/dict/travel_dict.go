package dictapimodels

import (
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
)

type StatusView struct {
	Code     string               `json:"code"`      // Код статуса, совпадает со значением в заявке
	UsedFor  models.StatusUsedFor `json:"used_for"`  // 1 - статус этапа согласования, 2 - статус заявки
	Name     string               `json:"name"`      // Название (eng)
	Nom      string               `json:"nom"`       // Название (fre)
	Order    int                  `json:"order"`     // Порядок отображения
	Color    string               `json:"color"`     // Цвет
	LegacyID int                  `json:"legacy_id"` // Идентификатор в старой системе
}

func StatusConvert(rec dbmodels.Status) StatusView {
	return StatusView{
		Code:     rec.Code,
		UsedFor:  rec.UsedFor,
		Name:     rec.Name,
		Nom:      rec.Nom,
		Order:    rec.Order,
		Color:    rec.Color,
		LegacyID: rec.LegacyID,
	}
}

type DictFind struct {
	Search string `json:"search"` // Поиск по названию
}

// DictItemData роль участника или причина поездки
type DictItemData struct {
	Name string `json:"name"` // Название (eng)
	Nom  string `json:"nom"`  // Название (fre)
}

func (d DictItemData) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название")
	}
	return nil
}

type DictItemView struct {
	DictItemData
	ID string `json:"id"`
}

func RoleConvert(rec dbmodels.Role) DictItemView {
	return DictItemView{
		DictItemData: DictItemData{
			Name: rec.Name,
			Nom:  rec.Nom,
		},
		ID: rec.ID,
	}
}

func ReasonConvert(rec dbmodels.Reason) DictItemView {
	return DictItemView{
		DictItemData: DictItemData{
			Name: rec.Name,
			Nom:  rec.Nom,
		},
		ID: rec.ID,
	}
}

type PurposeData struct {
	DictItemData
	DescriptionEng string `json:"description_eng"` // Описание (eng)
	DescriptionFre string `json:"description_fre"` // Описание (fre)
}

type PurposeView struct {
	PurposeData
	ID string `json:"id"`
}

func PurposeConvert(rec dbmodels.Purpose) PurposeView {
	return PurposeView{
		PurposeData: PurposeData{
			DictItemData: DictItemData{
				Name: rec.Name,
				Nom:  rec.Nom,
			},
			DescriptionEng: rec.DescriptionEng,
			DescriptionFre: rec.DescriptionFre,
		},
		ID: rec.ID,
	}
}
