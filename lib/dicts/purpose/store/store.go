package purposestore

import (
	"strings"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	IsUnique(selfID, name string) (bool, error)
	Create(rec dbmodels.Purpose) (id string, err error)
	GetByID(id string) (rec *dbmodels.Purpose, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter dictapimodels.DictFind) (list []dbmodels.Purpose, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// IsUnique возвращает true, если запись с таким названием уже есть
func (i impl) IsUnique(selfID, name string) (bool, error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Purpose{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) Create(rec dbmodels.Purpose) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Purpose, error) {
	rec := dbmodels.Purpose{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Purpose{}).
		Where("id = ?", id).
		Updates(updMap)
	err := tx.Error
	if err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) List(filter dictapimodels.DictFind) (list []dbmodels.Purpose, err error) {
	list = []dbmodels.Purpose{}
	tx := i.db.Model(dbmodels.Purpose{})
	if filter.Search != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
