package eventhistorystore

import (
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.EventHistory) (id string, err error)
	List(eventID string) (list []dbmodels.EventHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EventHistory) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(eventID string) (list []dbmodels.EventHistory, err error) {
	list = []dbmodels.EventHistory{}
	err = i.db.
		Model(dbmodels.EventHistory{}).
		Where("event_id = ?", eventID).
		Order("created_at").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
