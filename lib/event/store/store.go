package eventstore

import (
	"strings"
	eventapimodels "travel-tools-backend/models/api/event"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Save(rec *dbmodels.Event) (id string, err error)
	GetByID(id string) (rec *dbmodels.Event, err error)
	Delete(id string) error
	ListCount(filter eventapimodels.EventFilter) (count int64, err error)
	List(filter eventapimodels.EventFilter) (list []dbmodels.Event, err error)
	ListByRegisteredEvent(registeredEventID string) (list []dbmodels.Event, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save создает заявку, если ИД пустой, иначе перезаписывает все поля; связи не сохраняются
func (i impl) Save(rec *dbmodels.Event) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Event, error) {
	rec := dbmodels.Event{}
	err := i.db.
		Model(&dbmodels.Event{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Event{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter eventapimodels.EventFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Event{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества заявок")
		return 0, errors.New("ошибка получения общего количества заявок")
	}
	return rowCount, nil
}

func (i impl) List(filter eventapimodels.EventFilter) (list []dbmodels.Event, err error) {
	list = []dbmodels.Event{}
	tx := i.db.
		Model(dbmodels.Event{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("created_at desc")
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRegisteredEvent(registeredEventID string) (list []dbmodels.Event, err error) {
	list = []dbmodels.Event{}
	err = i.db.
		Model(dbmodels.Event{}).
		Where("registered_event_id = ?", registeredEventID).
		Preload("User").
		Order("last_name, first_name").
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

func (i impl) addFilter(tx *gorm.DB, filter eventapimodels.EventFilter) {
	if filter.FiscalYear != 0 {
		tx = tx.Where("fiscal_year = ?", filter.FiscalYear)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.WaitingOnID != "" {
		tx = tx.Where("waiting_on_id = ?", filter.WaitingOnID)
	}
	if filter.RegisteredEventID != "" {
		tx = tx.Where("registered_event_id = ?", filter.RegisteredEventID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(trip_title) like ? or LOWER(destination) like ? or LOWER(concat(first_name, ' ', last_name)) like ?)",
			search, search, search)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
