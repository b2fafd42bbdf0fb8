package db

import (
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.TravelUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TravelUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Status{}, &dbmodels.Role{}, &dbmodels.Reason{}, &dbmodels.Purpose{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры справочников")
	}
	if err := DB.AutoMigrate(&dbmodels.RegisteredEvent{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RegisteredEvent")
	}
	if err := DB.AutoMigrate(&dbmodels.Event{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Event")
	}
	if err := DB.AutoMigrate(&dbmodels.EventHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EventHistory")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
