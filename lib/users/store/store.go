package travelusersstore

import (
	"strings"
	usersapimodels "travel-tools-backend/models/api/users"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.TravelUser) (id string, err error)
	GetByID(id string) (rec *dbmodels.TravelUser, err error)
	FindByEmail(email, selfID string) (rec *dbmodels.TravelUser, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter usersapimodels.TravelUserFilter) (count int64, err error)
	List(filter usersapimodels.TravelUserFilter) (list []dbmodels.TravelUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TravelUser) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TravelUser, error) {
	rec := dbmodels.TravelUser{}
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

func (i impl) FindByEmail(email, selfID string) (*dbmodels.TravelUser, error) {
	rec := dbmodels.TravelUser{}
	tx := i.db.
		Where("LOWER(email) = ?", strings.ToLower(email))
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.First(&rec).Error
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
		Model(&dbmodels.TravelUser{}).
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

func (i impl) ListCount(filter usersapimodels.TravelUserFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.TravelUser{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества сотрудников")
		return 0, errors.New("ошибка получения общего количества сотрудников")
	}
	return rowCount, nil
}

func (i impl) List(filter usersapimodels.TravelUserFilter) (list []dbmodels.TravelUser, err error) {
	list = []dbmodels.TravelUser{}
	tx := i.db.
		Model(dbmodels.TravelUser{})
	i.addFilter(tx, filter)
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.GetOffset())
	err = tx.Order("last_name, first_name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter usersapimodels.TravelUserFilter) {
	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(concat(first_name, ' ', last_name)) like ? or LOWER(email) like ?)", search, search)
	}
}
