package smtp

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendHTML(subject, htmlBody, from string, to []string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
		sendFunc:   sendMail,
	}
	return nil
}

type sendFunc func(addr string, a sasl.Client, from string, to []string, r io.Reader, tlsEnabled bool) error

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	sendFunc   sendFunc
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendHTML(subject, htmlBody, from string, to []string) (err error) {
	logger := log.
		WithField("sender", from).
		WithField("recipients", strings.Join(to, ", ")).
		WithField("subject", subject)
	if len(to) == 0 {
		return errors.New("не указаны получатели письма")
	}
	if !i.IsConfigured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	msg, err := buildMessage(subject, htmlBody, from, to)
	if err != nil {
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	err = i.sendFunc(i.host+":"+i.port, auth, i.user, to, bytes.NewReader(msg), i.tlsEnabled)
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return errors.Wrap(err, "ошибка отправки письма")
	}
	logger.Info("письмо отправлено")
	return nil
}

func sendMail(addr string, a sasl.Client, from string, to []string, r io.Reader, tlsEnabled bool) error {
	if tlsEnabled {
		return smtp.SendMailTLS(addr, a, from, to, r)
	}
	return smtp.SendMail(addr, a, from, to, r)
}

var headerCleaner = strings.NewReplacer("\r", "", "\n", "")

// headerValue убирает переводы строк, чтобы значение не превратилось в новый заголовок
func headerValue(value string) string {
	return headerCleaner.Replace(value)
}

// buildMessage собирает html письмо; не-ASCII заголовки кодируются по RFC 2047
func buildMessage(subject, htmlBody, from string, to []string) ([]byte, error) {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, headerValue(addr))
	}
	msg := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	msg.SetHeader("From", headerValue(from))
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", headerValue(subject))
	msg.SetBody("text/html", htmlBody)

	buf := new(bytes.Buffer)
	if _, err := msg.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования письма")
	}
	return buf.Bytes(), nil
}
