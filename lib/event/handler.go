package eventhandler

import (
	"context"
	"time"
	"travel-tools-backend/db"
	approvalseeker "travel-tools-backend/lib/approval-seeker"
	eventhistorystore "travel-tools-backend/lib/event/history-store"
	eventstore "travel-tools-backend/lib/event/store"
	"travel-tools-backend/lib/notify"
	registeredeventstore "travel-tools-backend/lib/registered-event/store"
	travelusersstore "travel-tools-backend/lib/users/store"
	"travel-tools-backend/lib/utils/helpers"
	initchecker "travel-tools-backend/lib/utils/init-checker"
	"travel-tools-backend/lib/utils/lock"
	"travel-tools-backend/models"
	eventapimodels "travel-tools-backend/models/api/event"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(actorID string, data eventapimodels.EventData) (id, hMsg string, err error)
	Update(id, actorID string, data eventapimodels.EventData) (hMsg string, err error)
	GetByID(id string) (item eventapimodels.EventView, err error)
	List(filter eventapimodels.EventFilter) (list []eventapimodels.EventView, rowCount int64, err error)
	Delete(id string) (hMsg string, err error)
	Submit(id, actorID string) (hMsg string, err error)
	Unsubmit(id, actorID string) (hMsg string, err error)
	SetApprovers(id, actorID string, data eventapimodels.EventApproversData) (hMsg string, err error)
	Decide(id string, role models.ApprovalRole, actorID string, decision models.ApprovalDecision, comment string) (hMsg string, err error)
	Duplicate(id, actorID string) (newID, hMsg string, err error)
	History(id string) (list []eventapimodels.EventHistoryView, err error)
}

var Instance Provider

const msgNotFound = "заявка не найдена"

var errNotFound = errors.New(msgNotFound)

// lockWait время ожидания освобождения заявки, которую сохраняет другой запрос
const lockWait = 5 * time.Second

func NewHandler() {
	initchecker.CheckInit("eventhandler", map[string]any{
		"db":     db.DB,
		"notify": notify.Instance,
	})
	Instance = impl{
		store:                eventstore.NewInstance(db.DB),
		historyStore:         eventhistorystore.NewInstance(db.DB),
		userStore:            travelusersstore.NewInstance(db.DB),
		registeredEventStore: registeredeventstore.NewInstance(db.DB),
		notifier:             notify.Instance,
		inTx:                 dbTx,
		now:                  time.Now,
	}
}

// stores хранилища, работающие в рамках одной транзакции сохранения
type stores struct {
	event   eventstore.Provider
	history eventhistorystore.Provider
}

type txRunner func(fn func(s stores) error) error

func dbTx(fn func(s stores) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(stores{
			event:   eventstore.NewInstance(tx),
			history: eventhistorystore.NewInstance(tx),
		})
	})
}

type impl struct {
	store                eventstore.Provider
	historyStore         eventhistorystore.Provider
	userStore            travelusersstore.Provider
	registeredEventStore registeredeventstore.Provider
	notifier             notify.Provider
	inTx                 txRunner
	now                  func() time.Time
}

// historyEntry что записать в историю при сохранении
type historyEntry struct {
	role        models.ApprovalRole
	actorID     string
	comment     string
	description string
	force       bool // писать, даже если статус и ожидаемый не поменялись
}

func (i impl) Create(actorID string, data eventapimodels.EventData) (id, hMsg string, err error) {
	logger := log.WithField("actor_id", actorID)
	if data.UserID == "" {
		data.UserID = actorID
	}
	hMsg, err = i.checkDependency(data)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	rec := dbmodels.Event{}
	data.FillModel(&rec)
	err = i.inTx(func(s stores) error {
		return i.save(s, &rec, historyEntry{
			actorID:     actorID,
			description: "заявка создана",
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания заявки")
		return "", "", err
	}
	logger.
		WithField("rec_id", rec.ID).
		Info("создана заявка на поездку")
	return rec.ID, "", nil
}

func (i impl) Update(id, actorID string, data eventapimodels.EventData) (hMsg string, err error) {
	hMsg, err = i.checkDependency(data)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	return i.modify(id, historyEntry{actorID: actorID, description: "заявка изменена"}, func(rec *dbmodels.Event) string {
		data.FillModel(rec)
		return ""
	})
}

func (i impl) GetByID(id string) (item eventapimodels.EventView, err error) {
	rec, err := i.getRec(i.store, id)
	if err != nil {
		return eventapimodels.EventView{}, err
	}
	return eventapimodels.EventConvert(*rec), nil
}

func (i impl) List(filter eventapimodels.EventFilter) (list []eventapimodels.EventView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	if int64(filter.GetOffset()) > rowCount {
		return []eventapimodels.EventView{}, rowCount, nil
	}

	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок")
		return nil, 0, err
	}
	result := make([]eventapimodels.EventView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, eventapimodels.EventConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(id string) (hMsg string, err error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(i.store, id)
	if errors.Is(err, errNotFound) {
		return msgNotFound, nil
	}
	if err != nil {
		return "", err
	}
	if len(rec.Children) != 0 {
		return "у групповой поездки есть участники, сначала удалите их заявки", nil
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления заявки")
		return "", err
	}
	logger.Info("удалена заявка")
	return "", nil
}

func (i impl) Submit(id, actorID string) (hMsg string, err error) {
	return i.modify(id, historyEntry{actorID: actorID, description: "заявка отправлена на согласование"}, func(rec *dbmodels.Event) string {
		if rec.Submitted != nil {
			return "заявка уже отправлена на согласование"
		}
		now := i.now()
		rec.Submitted = &now
		return ""
	})
}

// Unsubmit возвращает заявку в черновик; решения согласующих, включая отказ, сбрасываются
func (i impl) Unsubmit(id, actorID string) (hMsg string, err error) {
	return i.modify(id, historyEntry{actorID: actorID, description: "заявка отозвана"}, func(rec *dbmodels.Event) string {
		if rec.Submitted == nil {
			return "заявка не отправлена на согласование"
		}
		rec.Submitted = nil
		for _, role := range models.ApprovalChain {
			rec.SetApprovalState(role, models.AStatusNotRequired, nil)
		}
		return ""
	})
}

func (i impl) SetApprovers(id, actorID string, data eventapimodels.EventApproversData) (hMsg string, err error) {
	byRole := data.ByRole()
	for _, role := range models.ApprovalChain {
		userID := byRole[role]
		if userID == "" {
			continue
		}
		hMsg, err = i.checkUser(userID, true)
		if err != nil || hMsg != "" {
			return hMsg, err
		}
	}
	return i.modify(id, historyEntry{actorID: actorID, description: "изменены согласующие"}, func(rec *dbmodels.Event) string {
		if rec.Status.IsTerminal() {
			return "согласование заявки завершено, изменить согласующих нельзя"
		}
		for _, role := range models.ApprovalChain {
			newID := strPtr(byRole[role])
			if helpers.SameStrPtr(rec.GetApproverID(role), newID) {
				continue
			}
			rec.SetApprover(role, newID)
			// новый согласующий начинает этап заново
			rec.SetApprovalState(role, models.AStatusNotRequired, nil)
		}
		return ""
	})
}

func (i impl) Decide(id string, role models.ApprovalRole, actorID string, decision models.ApprovalDecision, comment string) (hMsg string, err error) {
	if !role.IsValid() {
		return "неизвестный этап согласования", nil
	}
	status, ok := decision.ToStatus()
	if !ok {
		return "неизвестное решение", nil
	}
	entry := historyEntry{
		role:        role,
		actorID:     actorID,
		comment:     comment,
		description: status.ToHuman(),
		force:       true,
	}
	return i.modify(id, entry, func(rec *dbmodels.Event) string {
		approverID := rec.GetApproverID(role)
		if approverID == nil || *approverID != actorID {
			return "за этот этап отвечает другой сотрудник"
		}
		if rec.GetApprovalStatus(role) != models.AStatusPending {
			return "решение по этапу уже принято или не требуется"
		}
		current, ok := approvalseeker.Seek(approvalseeker.FromEvent(rec)).Pending()
		if !ok || current != role {
			return "заявка сейчас ожидает решения на другом этапе"
		}
		now := i.now()
		rec.SetApprovalState(role, status, &now)
		return ""
	})
}

// Duplicate копия заявки в виде нового черновика с теми же согласующими
func (i impl) Duplicate(id, actorID string) (newID, hMsg string, err error) {
	logger := log.
		WithField("rec_id", id).
		WithField("actor_id", actorID)
	src, err := i.getRec(i.store, id)
	if errors.Is(err, errNotFound) {
		return "", msgNotFound, nil
	}
	if err != nil {
		return "", "", err
	}
	rec := *src
	rec.BaseModel = dbmodels.BaseModel{}
	rec.Children = nil
	rec.Submitted = nil
	rec.WaitingOnID = nil
	rec.WaitingOn = nil
	rec.Status = ""
	for _, role := range models.ApprovalChain {
		rec.SetApprovalState(role, models.AStatusNotRequired, nil)
	}
	err = i.inTx(func(s stores) error {
		return i.save(s, &rec, historyEntry{
			actorID:     actorID,
			description: "заявка создана копированием",
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка копирования заявки")
		return "", "", err
	}
	logger.
		WithField("new_rec_id", rec.ID).
		Info("заявка скопирована")
	return rec.ID, "", nil
}

func (i impl) History(id string) (list []eventapimodels.EventHistoryView, err error) {
	recList, err := i.historyStore.List(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения истории заявки")
		return nil, err
	}
	result := make([]eventapimodels.EventHistoryView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, eventapimodels.EventHistoryConvert(rec))
	}
	return result, nil
}

// modify читает заявку, применяет изменение и сохраняет в одной транзакции.
// Непустая строка из change отменяет сохранение и возвращается как hMsg.
func (i impl) modify(id string, entry historyEntry, change func(rec *dbmodels.Event) string) (hMsg string, err error) {
	logger := log.
		WithField("rec_id", id).
		WithField("actor_id", entry.actorID)
	success, err := lock.WithDelay(context.Background(), "event_"+id, lockWait, func() error {
		return i.inTx(func(s stores) error {
			rec, err := i.getRec(s.event, id)
			if errors.Is(err, errNotFound) {
				hMsg = msgNotFound
				return nil
			}
			if err != nil {
				return err
			}
			hMsg = change(rec)
			if hMsg != "" {
				return nil
			}
			return i.save(s, rec, entry)
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения заявки")
		return "", err
	}
	if !success {
		return "заявка изменяется другим пользователем, повторите попытку", nil
	}
	if hMsg == "" {
		logger.Info(entry.description)
	}
	return hMsg, nil
}

// save пересчитывает производные поля, запускает согласование, сохраняет заявку и историю
// и отправляет запрос следующему согласующему. Ошибка отправки откатывает транзакцию.
func (i impl) save(s stores, rec *dbmodels.Event, entry historyEntry) error {
	prevStatus := rec.Status
	prevWaitingOnID := helpers.StrValue(rec.WaitingOnID)

	rec.TotalCost = rec.CalcTotalCost()
	// без даты начала ранее вычисленный год сохраняется
	if rec.StartDate != nil {
		fiscalYear := helpers.FiscalYear(*rec.StartDate)
		rec.FiscalYear = &fiscalYear
	}
	result := approvalseeker.Seek(approvalseeker.FromEvent(rec))
	result.ApplyTo(rec)

	_, err := s.event.Save(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения заявки")
	}

	changes := dbmodels.EntityChanges{Description: entry.description}
	changes.AddChange("status", string(prevStatus), string(rec.Status))
	changes.AddChange("waiting_on_id", prevWaitingOnID, helpers.StrValue(rec.WaitingOnID))
	if len(changes.Data) != 0 || entry.force {
		history := dbmodels.EventHistory{
			EventID:     rec.ID,
			Role:        entry.role,
			ActorID:     strPtr(entry.actorID),
			Status:      rec.Status,
			WaitingOnID: rec.WaitingOnID,
			Comment:     entry.comment,
			Changes:     changes,
		}
		_, err = s.history.Create(history)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения истории заявки")
		}
	}

	if result.Notify == nil {
		return nil
	}
	// согласующий и путешественник нужны в письме
	full, err := i.getRec(s.event, rec.ID)
	if err != nil {
		return err
	}
	return i.notifier.Send(notify.Request{Role: *result.Notify, Event: full})
}

func (i impl) getRec(store eventstore.Provider, id string) (*dbmodels.Event, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения заявки")
		return nil, err
	}
	if rec == nil {
		return nil, errNotFound
	}
	return rec, nil
}

func (i impl) checkDependency(data eventapimodels.EventData) (hMsg string, err error) {
	if data.UserID != "" {
		hMsg, err = i.checkUser(data.UserID, false)
		if err != nil || hMsg != "" {
			return hMsg, err
		}
	}
	if data.RegisteredEventID != "" {
		regEvent, err := i.registeredEventStore.GetByID(data.RegisteredEventID)
		if err != nil {
			return "", err
		}
		if regEvent == nil {
			return "мероприятие не найдено", nil
		}
	}
	if data.ParentEventID != "" {
		parent, err := i.store.GetByID(data.ParentEventID)
		if err != nil {
			return "", err
		}
		if parent == nil || !parent.IsGroupTrip {
			return "групповая поездка не найдена", nil
		}
	}
	return "", nil
}

func (i impl) checkUser(userID string, activeOnly bool) (hMsg string, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "сотрудник не найден", nil
	}
	if activeOnly && !user.IsActive {
		return "сотрудник " + user.GetFullName() + " неактивен", nil
	}
	return "", nil
}

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
