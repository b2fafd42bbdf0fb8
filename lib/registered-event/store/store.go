package registeredeventstore

import (
	"strings"
	registeredeventapimodels "travel-tools-backend/models/api/registered-event"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	IsUnique(selfID, name string) (bool, error)
	Create(rec dbmodels.RegisteredEvent) (id string, err error)
	GetByID(id string) (rec *dbmodels.RegisteredEvent, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter registeredeventapimodels.RegisteredEventFilter) (count int64, err error)
	List(filter registeredeventapimodels.RegisteredEventFilter) (list []dbmodels.RegisteredEvent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// IsUnique возвращает true, если мероприятие с таким названием уже есть
func (i impl) IsUnique(selfID, name string) (bool, error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.RegisteredEvent{}).
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

func (i impl) Create(rec dbmodels.RegisteredEvent) (id string, err error) {
	err = i.db.
		Omit("Trips").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RegisteredEvent, error) {
	rec := dbmodels.RegisteredEvent{}
	err := i.db.
		Where("id = ?", id).
		Preload("Trips").
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
		Model(&dbmodels.RegisteredEvent{}).
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

func (i impl) ListCount(filter registeredeventapimodels.RegisteredEventFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.RegisteredEvent{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества мероприятий")
		return 0, errors.New("ошибка получения общего количества мероприятий")
	}
	return rowCount, nil
}

func (i impl) List(filter registeredeventapimodels.RegisteredEventFilter) (list []dbmodels.RegisteredEvent, err error) {
	list = []dbmodels.RegisteredEvent{}
	tx := i.db.
		Model(dbmodels.RegisteredEvent{})
	i.addFilter(tx, filter)
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.GetOffset())
	err = tx.Order("start_date desc").Preload("Trips").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter registeredeventapimodels.RegisteredEventFilter) {
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(name) like ? or LOWER(nom) like ?)", search, search)
	}
}
