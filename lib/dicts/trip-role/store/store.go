package triprolestore

import (
	"strings"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	IsUnique(selfID, name string) (bool, error)
	Create(rec dbmodels.Role) (id string, err error)
	GetByID(id string) (rec *dbmodels.Role, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter dictapimodels.DictFind) (list []dbmodels.Role, err error)
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
		Model(dbmodels.Role{}).
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

func (i impl) Create(rec dbmodels.Role) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
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
		Model(&dbmodels.Role{}).
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

func (i impl) List(filter dictapimodels.DictFind) (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	tx := i.db.Model(dbmodels.Role{})
	if filter.Search != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
