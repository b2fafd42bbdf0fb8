package initializers

import (
	"travel-tools-backend/config"
	"travel-tools-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.ConnectParams{
		Host:            config.Conf.Database.Host,
		Port:            config.Conf.Database.Port,
		Name:            config.Conf.Database.Name,
		User:            config.Conf.Database.User,
		Password:        config.Conf.Database.Password,
		SSLMode:         config.Conf.Database.SSLMode,
		MaxOpenConns:    config.Conf.Database.MaxOpenConns,
		MaxIdleConns:    config.Conf.Database.MaxIdleConns,
		ConnMaxLifetime: config.Conf.Database.ConnMaxLifetime,
		DebugMode:       *config.Conf.Database.DebugMode,
		Migrate:         *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
}
