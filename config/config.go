package config

import (
	"strings"
	"time"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		SiteURL    string `default:"http://localhost:8080" env:"APP_SITE_URL"`

		// адрес webhook для уведомлений об ошибках 5xx, пустой - не отправлять
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"travel-tools" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		SSLMode        string `default:"disable" env:"DB_SSL_MODE"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`

		MaxOpenConns    int           `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns    int           `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxLifetime time.Duration `default:"30m" env:"DB_CONN_MAX_LIFETIME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Notify struct {
		FromEmail string `default:"no-reply@travel-tools.local" env:"NOTIFY_FROM_EMAIL"`

		// список почтовых ящиков администраторов поездок через запятую
		AdminEmails string `default:"" env:"NOTIFY_ADMIN_EMAILS"`
	}
}

// GetAdminEmails разбирает список администраторов из настройки NOTIFY_ADMIN_EMAILS
func (c Configuration) GetAdminEmails() []string {
	result := []string{}
	for _, item := range strings.Split(c.Notify.AdminEmails, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
