package notify

import (
	"testing"
	"time"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	subject  string
	htmlBody string
	from     string
	to       []string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) SendHTML(subject, htmlBody, from string, to []string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{subject, htmlBody, from, to})
	return nil
}

func getEvent() *dbmodels.Event {
	start := time.Date(2020, time.September, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.September, 18, 0, 0, 0, 0, time.UTC)
	air := 850.0
	rec1ID := "rec1-id"
	admID := "adm-id"
	rec := &dbmodels.Event{
		FirstName:      "Jane",
		LastName:       "Doe",
		TripTitle:      "Annual science meeting",
		Destination:    "Halifax, NS",
		StartDate:      &start,
		EndDate:        &end,
		EventCosts:     dbmodels.EventCosts{Air: &air},
		TotalCost:      850,
		Recommender1ID: &rec1ID,
		Recommender1: &dbmodels.TravelUser{
			BaseModel: dbmodels.BaseModel{ID: rec1ID},
			FirstName: "Rick",
			LastName:  "Recommender",
			Email:     "rick@dfo.local",
		},
		AdmID: &admID,
		Adm: &dbmodels.TravelUser{
			BaseModel: dbmodels.BaseModel{ID: admID},
			FirstName: "Ann",
			LastName:  "Adams",
			Email:     "ann@dfo.local",
		},
	}
	rec.ID = "event-id"
	return rec
}

func TestNotify(t *testing.T) {
	t.Run(`recommender message check`, func(t *testing.T) {
		sender := &fakeSender{}
		i := NewInstance(sender, "travel@dfo.local", "https://travel.dfo.local/", nil)
		msg, err := i.Build(Request{Role: models.ARoleRecommender1, Event: getEvent()})
		require.Nil(t, err)
		require.Equal(t, "A trip request is awaiting your recommendation - Annual science meeting", msg.Subject)
		require.Equal(t, "travel@dfo.local", msg.From)
		require.Equal(t, []string{"rick@dfo.local"}, msg.To)
		require.Contains(t, msg.HTMLBody, "Hello Rick Recommender")
		require.Contains(t, msg.HTMLBody, "Jane Doe")
		require.Contains(t, msg.HTMLBody, "2020-09-14 - 2020-09-18")
		require.Contains(t, msg.HTMLBody, "$850.00")
		require.Contains(t, msg.HTMLBody, "https://travel.dfo.local/trips/event-id")
	})

	t.Run(`admin message check`, func(t *testing.T) {
		sender := &fakeSender{}
		i := NewInstance(sender, "travel@dfo.local", "https://travel.dfo.local", nil)
		msg, err := i.Build(Request{Role: models.ARoleADM, Event: getEvent()})
		require.Nil(t, err)
		require.Equal(t, "A trip request is awaiting ADM approval - Annual science meeting", msg.Subject)
		require.Equal(t, []string{"ann@dfo.local"}, msg.To)
		require.Contains(t, msg.HTMLBody, "awaiting ADM approval by Ann Adams")

		i = NewInstance(sender, "travel@dfo.local", "https://travel.dfo.local", []string{"tms-admin@dfo.local"})
		msg, err = i.Build(Request{Role: models.ARoleADM, Event: getEvent()})
		require.Nil(t, err)
		require.Equal(t, []string{"tms-admin@dfo.local"}, msg.To)

		// администраторы не получают письма для рекомендующих
		msg, err = i.Build(Request{Role: models.ARoleRecommender1, Event: getEvent()})
		require.Nil(t, err)
		require.Equal(t, []string{"rick@dfo.local"}, msg.To)
	})

	t.Run(`html escape check`, func(t *testing.T) {
		rec := getEvent()
		rec.TripTitle = "<script>alert(1)</script>"
		i := NewInstance(&fakeSender{}, "travel@dfo.local", "", nil)
		msg, err := i.Build(Request{Role: models.ARoleRecommender1, Event: rec})
		require.Nil(t, err)
		require.NotContains(t, msg.HTMLBody, "<script>")
	})

	t.Run(`send check`, func(t *testing.T) {
		sender := &fakeSender{}
		i := NewInstance(sender, "travel@dfo.local", "", nil)
		err := i.Send(Request{Role: models.ARoleRecommender1, Event: getEvent()})
		require.Nil(t, err)
		require.Len(t, sender.sent, 1)
		require.Equal(t, []string{"rick@dfo.local"}, sender.sent[0].to)
	})

	t.Run(`approver without email check`, func(t *testing.T) {
		sender := &fakeSender{}
		rec := getEvent()
		rec.Recommender1.Email = ""
		i := NewInstance(sender, "travel@dfo.local", "", nil)
		err := i.Send(Request{Role: models.ARoleRecommender1, Event: rec})
		require.Nil(t, err)
		require.Len(t, sender.sent, 0)
	})

	t.Run(`transport error check`, func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp is down")}
		i := NewInstance(sender, "travel@dfo.local", "", nil)
		err := i.Send(Request{Role: models.ARoleRDG, Event: getEvent()})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "smtp is down")
	})

	t.Run(`invalid request check`, func(t *testing.T) {
		i := NewInstance(&fakeSender{}, "travel@dfo.local", "", nil)
		_, err := i.Build(Request{Role: models.ARoleADM})
		require.NotNil(t, err)
		_, err = i.Build(Request{Role: "boss", Event: getEvent()})
		require.NotNil(t, err)
	})
}
