package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
	"travel-tools-backend/lib/smtp"
	"travel-tools-backend/lib/utils/helpers"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFiles = map[models.NotifyKind]string{
	models.NotifyKindRecommender: "templates/approval_awaiting.html",
	models.NotifyKindAdmin:       "templates/admin_approval_awaiting.html",
}

// Request запрос на согласование этапа заявки
type Request struct {
	Role  models.ApprovalRole
	Event *dbmodels.Event
}

type Message struct {
	Subject  string
	HTMLBody string
	From     string
	To       []string
}

type Provider interface {
	Build(req Request) (Message, error)
	Send(req Request) error
}

var Instance Provider

func NewHandler(sender smtp.Provider, from, siteURL string, adminEmails []string) {
	Instance = NewInstance(sender, from, siteURL, adminEmails)
}

func NewInstance(sender smtp.Provider, from, siteURL string, adminEmails []string) Provider {
	return impl{
		sender:      sender,
		from:        from,
		siteURL:     strings.TrimRight(siteURL, "/"),
		adminEmails: adminEmails,
	}
}

type impl struct {
	sender      smtp.Provider
	from        string
	siteURL     string
	adminEmails []string
}

type templateData struct {
	ApproverName  string
	RoleName      string
	TravellerName string
	TripTitle     string
	Destination   string
	StartDate     string
	EndDate       string
	TotalCost     string
	CostBreakdown string
	Link          string
}

func (i impl) Build(req Request) (Message, error) {
	if req.Event == nil {
		return Message{}, errors.New("не передана заявка для уведомления")
	}
	if !req.Role.IsValid() {
		return Message{}, errors.Errorf("неизвестный этап согласования: %v", req.Role)
	}
	rec := req.Event
	kind := req.Role.NotifyKind()
	tpl, err := getTemplate(kind)
	if err != nil {
		return Message{}, err
	}
	data := templateData{
		RoleName:      req.Role.ToHuman(),
		TravellerName: rec.GetTravellerName(),
		TripTitle:     rec.TripTitle,
		Destination:   rec.Destination,
		StartDate:     formatDate(rec.StartDate),
		EndDate:       formatDate(rec.EndDate),
		TotalCost:     helpers.FormatCurrency(rec.TotalCost),
		CostBreakdown: rec.CostBreakdown(),
		Link:          fmt.Sprintf("%s/trips/%s", i.siteURL, rec.ID),
	}
	approver := rec.GetApprover(req.Role)
	if approver != nil {
		data.ApproverName = approver.GetFullName()
	}

	buf := new(bytes.Buffer)
	if err = tpl.Execute(buf, data); err != nil {
		return Message{}, errors.Wrap(err, "ошибка формирования письма")
	}
	return Message{
		Subject:  getSubject(req.Role, rec),
		HTMLBody: buf.String(),
		From:     i.from,
		To:       i.getRecipients(kind, approver),
	}, nil
}

func (i impl) Send(req Request) error {
	msg, err := i.Build(req)
	if err != nil {
		return err
	}
	logger := log.
		WithField("event_id", req.Event.ID).
		WithField("role", req.Role)
	if len(msg.To) == 0 {
		logger.Warn("запрос на согласование не отправлен: у согласующего не указана почта")
		return nil
	}
	if err = i.sender.SendHTML(msg.Subject, msg.HTMLBody, msg.From, msg.To); err != nil {
		return errors.Wrapf(err, "ошибка отправки запроса на согласование, этап %v", req.Role)
	}
	logger.Info("запрос на согласование отправлен")
	return nil
}

// getRecipients письма для ADM/RDG уходят администраторам поездок, если они настроены
func (i impl) getRecipients(kind models.NotifyKind, approver *dbmodels.TravelUser) []string {
	if kind == models.NotifyKindAdmin && len(i.adminEmails) != 0 {
		return append([]string{}, i.adminEmails...)
	}
	if approver == nil || approver.Email == "" {
		return []string{}
	}
	return []string{approver.Email}
}

func getSubject(role models.ApprovalRole, rec *dbmodels.Event) string {
	if role.NotifyKind() == models.NotifyKindRecommender {
		return fmt.Sprintf("A trip request is awaiting your recommendation - %s", rec.TripTitle)
	}
	return fmt.Sprintf("A trip request is awaiting %s approval - %s", role.ToHuman(), rec.TripTitle)
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("2006-01-02")
}

func getTemplate(kind models.NotifyKind) (*template.Template, error) {
	filePath, ok := templateFiles[kind]
	if !ok {
		return nil, errors.Errorf("не найден шаблон письма для %v", kind)
	}
	body, err := templatesFS.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла шаблона %v", filePath)
	}
	tpl, err := template.New("msg_body").Parse(strings.Replace(string(body), "\n", "", -1))
	if err != nil {
		return nil, err
	}
	return tpl, nil
}
