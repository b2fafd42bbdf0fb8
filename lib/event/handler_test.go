package eventhandler

import (
	"fmt"
	"testing"
	"time"
	eventhistorystore "travel-tools-backend/lib/event/history-store"
	eventstore "travel-tools-backend/lib/event/store"
	"travel-tools-backend/lib/notify"
	registeredeventstore "travel-tools-backend/lib/registered-event/store"
	travelusersstore "travel-tools-backend/lib/users/store"
	"travel-tools-backend/models"
	eventapimodels "travel-tools-backend/models/api/event"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	events  map[string]dbmodels.Event
	history []dbmodels.EventHistory
	users   map[string]dbmodels.TravelUser
	seq     int
}

func (f *fakeDB) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeDB) user(id *string) *dbmodels.TravelUser {
	if id == nil {
		return nil
	}
	user, ok := f.users[*id]
	if !ok {
		return nil
	}
	return &user
}

type fakeEventStore struct {
	eventstore.Provider
	db *fakeDB
}

func (s fakeEventStore) Save(rec *dbmodels.Event) (string, error) {
	if rec.ID == "" {
		rec.ID = s.db.nextID("event")
	}
	stored := *rec
	stored.User = nil
	stored.Children = nil
	stored.Recommender1, stored.Recommender2, stored.Recommender3 = nil, nil, nil
	stored.Adm, stored.Rdg, stored.WaitingOn = nil, nil, nil
	s.db.events[rec.ID] = stored
	return rec.ID, nil
}

func (s fakeEventStore) GetByID(id string) (*dbmodels.Event, error) {
	stored, ok := s.db.events[id]
	if !ok {
		return nil, nil
	}
	rec := stored
	rec.User = s.db.user(rec.UserID)
	rec.Recommender1 = s.db.user(rec.Recommender1ID)
	rec.Recommender2 = s.db.user(rec.Recommender2ID)
	rec.Recommender3 = s.db.user(rec.Recommender3ID)
	rec.Adm = s.db.user(rec.AdmID)
	rec.Rdg = s.db.user(rec.RdgID)
	rec.WaitingOn = s.db.user(rec.WaitingOnID)
	for _, child := range s.db.events {
		if child.ParentEventID != nil && *child.ParentEventID == id {
			rec.Children = append(rec.Children, child)
		}
	}
	return &rec, nil
}

func (s fakeEventStore) Delete(id string) error {
	delete(s.db.events, id)
	return nil
}

type fakeHistoryStore struct {
	eventhistorystore.Provider
	db *fakeDB
}

func (s fakeHistoryStore) Create(rec dbmodels.EventHistory) (string, error) {
	rec.ID = s.db.nextID("history")
	s.db.history = append(s.db.history, rec)
	return rec.ID, nil
}

func (s fakeHistoryStore) List(eventID string) ([]dbmodels.EventHistory, error) {
	list := []dbmodels.EventHistory{}
	for _, rec := range s.db.history {
		if rec.EventID == eventID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeUserStore struct {
	travelusersstore.Provider
	db *fakeDB
}

func (s fakeUserStore) GetByID(id string) (*dbmodels.TravelUser, error) {
	return s.db.user(&id), nil
}

type fakeRegisteredEventStore struct {
	registeredeventstore.Provider
}

func (s fakeRegisteredEventStore) GetByID(id string) (*dbmodels.RegisteredEvent, error) {
	return nil, nil
}

type fakeNotifier struct {
	sent []notify.Request
	err  error
}

func (f *fakeNotifier) Build(req notify.Request) (notify.Message, error) {
	return notify.Message{}, nil
}

func (f *fakeNotifier) Send(req notify.Request) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, req)
	return nil
}

var testNow = time.Date(2020, time.June, 1, 10, 0, 0, 0, time.UTC)

func getHandler() (impl, *fakeDB, *fakeNotifier) {
	fdb := &fakeDB{
		events: map[string]dbmodels.Event{},
		users: map[string]dbmodels.TravelUser{
			"traveller": {BaseModel: dbmodels.BaseModel{ID: "traveller"}, FirstName: "Jane", LastName: "Doe", Email: "jane@dfo.local", IsActive: true},
			"rec1":      {BaseModel: dbmodels.BaseModel{ID: "rec1"}, FirstName: "Rick", LastName: "One", Email: "rick@dfo.local", IsActive: true},
			"rec2":      {BaseModel: dbmodels.BaseModel{ID: "rec2"}, FirstName: "Rita", LastName: "Two", Email: "rita@dfo.local", IsActive: true},
			"adm":       {BaseModel: dbmodels.BaseModel{ID: "adm"}, FirstName: "Ann", LastName: "Adams", Email: "ann@dfo.local", IsActive: true},
			"retired":   {BaseModel: dbmodels.BaseModel{ID: "retired"}, FirstName: "Old", LastName: "Timer"},
		},
	}
	notifier := &fakeNotifier{}
	events := fakeEventStore{db: fdb}
	history := fakeHistoryStore{db: fdb}
	i := impl{
		store:                events,
		historyStore:         history,
		userStore:            fakeUserStore{db: fdb},
		registeredEventStore: fakeRegisteredEventStore{},
		notifier:             notifier,
		inTx: func(fn func(s stores) error) error {
			eventsBackup := map[string]dbmodels.Event{}
			for id, rec := range fdb.events {
				eventsBackup[id] = rec
			}
			historyBackup := append([]dbmodels.EventHistory{}, fdb.history...)
			err := fn(stores{event: events, history: history})
			if err != nil {
				fdb.events = eventsBackup
				fdb.history = historyBackup
			}
			return err
		},
		now: func() time.Time { return testNow },
	}
	return i, fdb, notifier
}

func getEventData() eventapimodels.EventData {
	start := time.Date(2020, time.September, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.September, 18, 0, 0, 0, 0, time.UTC)
	air := 850.0
	meals := 150.5
	return eventapimodels.EventData{
		UserID:      "traveller",
		TripTitle:   "Annual science meeting",
		Destination: "Halifax, NS",
		StartDate:   &start,
		EndDate:     &end,
		EventCostsData: eventapimodels.EventCostsData{
			Air:   &air,
			Meals: &meals,
		},
	}
}

func createSubmitted(t *testing.T, i impl, approvers eventapimodels.EventApproversData) string {
	id, hMsg, err := i.Create("traveller", getEventData())
	require.Nil(t, err)
	require.Empty(t, hMsg)
	hMsg, err = i.SetApprovers(id, "traveller", approvers)
	require.Nil(t, err)
	require.Empty(t, hMsg)
	hMsg, err = i.Submit(id, "traveller")
	require.Nil(t, err)
	require.Empty(t, hMsg)
	return id
}

func TestEventHandler(t *testing.T) {
	t.Run(`create draft check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id, hMsg, err := i.Create("traveller", getEventData())
		require.Nil(t, err)
		require.Empty(t, hMsg)

		rec := fdb.events[id]
		require.Equal(t, models.TripStatusDraft, rec.Status)
		require.Equal(t, 1000.5, rec.TotalCost)
		require.NotNil(t, rec.FiscalYear)
		require.Equal(t, 2021, *rec.FiscalYear)
		require.Nil(t, rec.WaitingOnID)
		for _, role := range models.ApprovalChain {
			require.Equal(t, models.AStatusNotRequired, rec.GetApprovalStatus(role))
		}
		require.Len(t, notifier.sent, 0)
		require.Len(t, fdb.history, 1)
		require.Equal(t, models.TripStatusDraft, fdb.history[0].Status)
	})

	t.Run(`traveller defaults to actor check`, func(t *testing.T) {
		i, fdb, _ := getHandler()
		data := getEventData()
		data.UserID = ""
		id, _, err := i.Create("rec1", data)
		require.Nil(t, err)
		require.Equal(t, "rec1", *fdb.events[id].UserID)

		data.UserID = "ghost"
		_, hMsg, err := i.Create("rec1", data)
		require.Nil(t, err)
		require.Equal(t, "сотрудник не найден", hMsg)
	})

	t.Run(`submit check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1", AdmID: "adm"})

		rec := fdb.events[id]
		require.Equal(t, testNow, *rec.Submitted)
		require.Equal(t, models.TripStatusPendingRecommendation, rec.Status)
		require.Equal(t, "rec1", *rec.WaitingOnID)
		require.Equal(t, models.AStatusPending, rec.Recommender1ApprovalStatus)
		require.Equal(t, models.AStatusNotRequired, rec.Recommender2ApprovalStatus)
		require.Equal(t, models.AStatusPending, rec.AdmApprovalStatus)

		require.Len(t, notifier.sent, 1)
		require.Equal(t, models.ARoleRecommender1, notifier.sent[0].Role)
		require.NotNil(t, notifier.sent[0].Event.Recommender1)
		require.Equal(t, "rick@dfo.local", notifier.sent[0].Event.Recommender1.Email)

		hMsg, err := i.Submit(id, "traveller")
		require.Nil(t, err)
		require.Equal(t, "заявка уже отправлена на согласование", hMsg)
		require.Len(t, notifier.sent, 1)
	})

	t.Run(`approval chain check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1", AdmID: "adm"})

		hMsg, err := i.Decide(id, models.ARoleRecommender1, "adm", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, "за этот этап отвечает другой сотрудник", hMsg)

		hMsg, err = i.Decide(id, models.ARoleADM, "adm", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, "заявка сейчас ожидает решения на другом этапе", hMsg)

		hMsg, err = i.Decide(id, models.ARoleRecommender1, "rec1", models.DecisionApprove, "looks good")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec := fdb.events[id]
		require.Equal(t, models.TripStatusPendingADMApproval, rec.Status)
		require.Equal(t, "adm", *rec.WaitingOnID)
		require.Equal(t, models.AStatusApproved, rec.Recommender1ApprovalStatus)
		require.Equal(t, testNow, *rec.Recommender1ApprovalDate)
		require.Len(t, notifier.sent, 2)
		require.Equal(t, models.ARoleADM, notifier.sent[1].Role)

		hMsg, err = i.Decide(id, models.ARoleRecommender1, "rec1", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, "решение по этапу уже принято или не требуется", hMsg)

		hMsg, err = i.Decide(id, models.ARoleADM, "adm", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec = fdb.events[id]
		require.Equal(t, models.TripStatusApproved, rec.Status)
		require.Nil(t, rec.WaitingOnID)
		require.Len(t, notifier.sent, 2)

		history, err := i.History(id)
		require.Nil(t, err)
		last := history[len(history)-1]
		require.Equal(t, models.ARoleADM, last.Role)
		require.Equal(t, "adm", last.ActorID)
		require.Equal(t, models.TripStatusApproved, last.Status)
	})

	t.Run(`deny and unsubmit check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1", Recommender2ID: "rec2"})

		hMsg, err := i.Decide(id, models.ARoleRecommender1, "rec1", models.DecisionDeny, "too expensive")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec := fdb.events[id]
		require.Equal(t, models.TripStatusDenied, rec.Status)
		require.Equal(t, "rec1", *rec.WaitingOnID)
		require.Len(t, notifier.sent, 1)

		hMsg, err = i.Unsubmit(id, "traveller")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec = fdb.events[id]
		require.Equal(t, models.TripStatusDraft, rec.Status)
		require.Nil(t, rec.Submitted)
		require.Nil(t, rec.WaitingOnID)
		require.Equal(t, models.AStatusNotRequired, rec.Recommender1ApprovalStatus)
		require.Nil(t, rec.Recommender1ApprovalDate)
		require.Equal(t, "rec1", *rec.Recommender1ID)

		hMsg, err = i.Unsubmit(id, "traveller")
		require.Nil(t, err)
		require.Equal(t, "заявка не отправлена на согласование", hMsg)

		// повторная отправка снова начинается с первого рекомендующего
		hMsg, err = i.Submit(id, "traveller")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.TripStatusPendingRecommendation, fdb.events[id].Status)
		require.Len(t, notifier.sent, 2)
	})

	t.Run(`notification error rolls back check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id, _, err := i.Create("traveller", getEventData())
		require.Nil(t, err)
		_, err = i.SetApprovers(id, "traveller", eventapimodels.EventApproversData{Recommender1ID: "rec1"})
		require.Nil(t, err)
		historyLen := len(fdb.history)

		notifier.err = errors.New("smtp is down")
		_, err = i.Submit(id, "traveller")
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "smtp is down")

		rec := fdb.events[id]
		require.Nil(t, rec.Submitted)
		require.Equal(t, models.TripStatusDraft, rec.Status)
		require.Len(t, fdb.history, historyLen)
	})

	t.Run(`set approvers check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1"})

		hMsg, err := i.SetApprovers(id, "traveller", eventapimodels.EventApproversData{Recommender1ID: "retired"})
		require.Nil(t, err)
		require.Equal(t, "сотрудник Old Timer неактивен", hMsg)

		// замена согласующего после отправки переводит ожидание на нового
		hMsg, err = i.SetApprovers(id, "traveller", eventapimodels.EventApproversData{Recommender1ID: "rec2"})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec := fdb.events[id]
		require.Equal(t, "rec2", *rec.WaitingOnID)
		require.Equal(t, models.AStatusPending, rec.Recommender1ApprovalStatus)
		require.Len(t, notifier.sent, 2)
		require.Equal(t, "rita@dfo.local", notifier.sent[1].Event.Recommender1.Email)

		_, err = i.Decide(id, models.ARoleRecommender1, "rec2", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, models.TripStatusApproved, fdb.events[id].Status)
		hMsg, err = i.SetApprovers(id, "traveller", eventapimodels.EventApproversData{Recommender1ID: "rec1"})
		require.Nil(t, err)
		require.Equal(t, "согласование заявки завершено, изменить согласующих нельзя", hMsg)
	})

	t.Run(`submit without approvers check`, func(t *testing.T) {
		i, fdb, notifier := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{})
		require.Equal(t, models.TripStatusApproved, fdb.events[id].Status)
		require.Len(t, notifier.sent, 0)
	})

	t.Run(`duplicate check`, func(t *testing.T) {
		i, fdb, _ := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1"})
		newID, hMsg, err := i.Duplicate(id, "traveller")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotEqual(t, id, newID)

		rec := fdb.events[newID]
		require.Equal(t, models.TripStatusDraft, rec.Status)
		require.Nil(t, rec.Submitted)
		require.Nil(t, rec.WaitingOnID)
		require.Equal(t, "rec1", *rec.Recommender1ID)
		require.Equal(t, models.AStatusNotRequired, rec.Recommender1ApprovalStatus)
		require.Equal(t, "Annual science meeting", rec.TripTitle)
		require.Equal(t, 1000.5, rec.TotalCost)
	})

	t.Run(`delete check`, func(t *testing.T) {
		i, fdb, _ := getHandler()
		groupData := getEventData()
		groupData.IsGroupTrip = true
		groupID, _, err := i.Create("traveller", groupData)
		require.Nil(t, err)
		childData := getEventData()
		childData.ParentEventID = groupID
		childID, hMsg, err := i.Create("traveller", childData)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		view, err := i.GetByID(groupID)
		require.Nil(t, err)
		require.Equal(t, 1000.5, view.TotalTripCost)
		require.Equal(t, []string{childID}, view.ChildrenIDs)

		hMsg, err = i.Delete(groupID)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)

		hMsg, err = i.Delete(childID)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		_, ok := fdb.events[childID]
		require.False(t, ok)

		_, err = i.GetByID(childID)
		require.NotNil(t, err)
	})

	t.Run(`invalid decision check`, func(t *testing.T) {
		i, _, _ := getHandler()
		id := createSubmitted(t, i, eventapimodels.EventApproversData{Recommender1ID: "rec1"})
		hMsg, err := i.Decide(id, "boss", "rec1", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, "неизвестный этап согласования", hMsg)
		hMsg, err = i.Decide(id, models.ARoleRecommender1, "rec1", "maybe", "")
		require.Nil(t, err)
		require.Equal(t, "неизвестное решение", hMsg)
	})

	t.Run(`unknown trip check`, func(t *testing.T) {
		i, _, _ := getHandler()
		hMsg, err := i.Update("missing", "traveller", getEventData())
		require.Nil(t, err)
		require.Equal(t, "заявка не найдена", hMsg)

		hMsg, err = i.Submit("missing", "traveller")
		require.Nil(t, err)
		require.Equal(t, "заявка не найдена", hMsg)

		hMsg, err = i.Decide("missing", models.ARoleRecommender1, "rec1", models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, "заявка не найдена", hMsg)

		hMsg, err = i.Delete("missing")
		require.Nil(t, err)
		require.Equal(t, "заявка не найдена", hMsg)

		newID, hMsg, err := i.Duplicate("missing", "traveller")
		require.Nil(t, err)
		require.Empty(t, newID)
		require.Equal(t, "заявка не найдена", hMsg)
	})

	t.Run(`fiscal year kept without start date check`, func(t *testing.T) {
		i, fdb, _ := getHandler()
		id, _, err := i.Create("traveller", getEventData())
		require.Nil(t, err)
		require.Equal(t, 2021, *fdb.events[id].FiscalYear)

		data := getEventData()
		data.StartDate = nil
		hMsg, err := i.Update(id, "traveller", data)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotNil(t, fdb.events[id].FiscalYear)
		require.Equal(t, 2021, *fdb.events[id].FiscalYear)
	})
}
