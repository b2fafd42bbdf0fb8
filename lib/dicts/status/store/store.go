package statusstore

import (
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	List(usedFor models.StatusUsedFor) ([]dbmodels.Status, error)
	Upsert(rec dbmodels.Status) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(usedFor models.StatusUsedFor) ([]dbmodels.Status, error) {
	result := []dbmodels.Status{}
	tx := i.db.Model(dbmodels.Status{})
	if usedFor != 0 {
		tx = tx.Where("used_for = ?", usedFor)
	}
	err := tx.Order("used_for, \"order\"").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка статусов")
	}
	return result, nil
}

func (i impl) Upsert(rec dbmodels.Status) error {
	err := i.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrapf(err, "ошибка сохранения статуса %v", rec.Code)
	}
	return nil
}
