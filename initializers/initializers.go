package initializers

import (
	"travel-tools-backend/config"
	"travel-tools-backend/fiberlog"
	purposeprovider "travel-tools-backend/lib/dicts/purpose"
	reasonprovider "travel-tools-backend/lib/dicts/reason"
	statusprovider "travel-tools-backend/lib/dicts/status"
	triproleprovider "travel-tools-backend/lib/dicts/trip-role"
	eventhandler "travel-tools-backend/lib/event"
	"travel-tools-backend/lib/notify"
	registeredeventhandler "travel-tools-backend/lib/registered-event"
	"travel-tools-backend/lib/smtp"
	usershandler "travel-tools-backend/lib/users"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	notify.NewHandler(smtp.Instance, config.Conf.Notify.FromEmail, config.Conf.App.SiteURL, config.Conf.GetAdminEmails())
	statusprovider.NewHandler()
	triproleprovider.NewHandler()
	reasonprovider.NewHandler()
	purposeprovider.NewHandler()
	usershandler.NewHandler()
	registeredeventhandler.NewHandler()
	eventhandler.NewHandler()
	initPreload()
}

func initPreload() {
	if err := statusprovider.Instance.Fill(); err != nil {
		log.WithError(err).Error("ошибка заполнения справочника статусов")
	}
	if err := triproleprovider.Instance.FillDefaults(); err != nil {
		log.WithError(err).Error("ошибка заполнения справочника ролей участника")
	}
	if err := reasonprovider.Instance.FillDefaults(); err != nil {
		log.WithError(err).Error("ошибка заполнения справочника причин поездки")
	}
}
