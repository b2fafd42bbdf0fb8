package eventapimodels

import (
	"testing"
	"time"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestEventData(t *testing.T) {
	t.Run(`Validate check`, func(t *testing.T) {
		start := time.Date(2020, time.September, 14, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 4)
		data := EventData{TripTitle: "Annual science meeting", StartDate: &start, EndDate: &end}
		require.Nil(t, data.Validate())

		data.TripTitle = ""
		require.NotNil(t, data.Validate())

		data.TripTitle = "Annual science meeting"
		data.EndDate = &start
		data.StartDate = &end
		require.NotNil(t, data.Validate())

		data.StartDate = &start
		data.EndDate = &end
		data.IsRegisteredEvent = true
		require.NotNil(t, data.Validate())
		data.RegisteredEventID = "reg-event-id"
		require.Nil(t, data.Validate())
	})

	t.Run(`FillModel check`, func(t *testing.T) {
		air := 850.0
		data := EventData{
			TripTitle:      "Annual science meeting",
			UserID:         "traveller-id",
			Destination:    "Halifax, NS",
			EventCostsData: EventCostsData{Air: &air},
		}
		rec := &dbmodels.Event{
			Status: models.TripStatusPendingADMApproval,
			User:   &dbmodels.TravelUser{FirstName: "Old"},
		}
		data.FillModel(rec)
		require.Equal(t, "Annual science meeting", rec.TripTitle)
		require.Equal(t, "traveller-id", *rec.UserID)
		require.Nil(t, rec.RegisteredEventID)
		require.Nil(t, rec.User)
		require.Equal(t, 850.0, *rec.Air)
		require.Equal(t, models.TripStatusPendingADMApproval, rec.Status)
	})
}

func TestEventConvert(t *testing.T) {
	fiscalYear := 2021
	rec1ID := "rec1-id"
	rec := dbmodels.Event{
		FirstName:   "Jane",
		LastName:    "Doe",
		TripTitle:   "Annual science meeting",
		FiscalYear:  &fiscalYear,
		TotalCost:   1000.5,
		Status:      models.TripStatusPendingRecommendation,
		WaitingOnID: &rec1ID,
		WaitingOn: &dbmodels.TravelUser{
			BaseModel: dbmodels.BaseModel{ID: rec1ID},
			FirstName: "Rick",
			LastName:  "Recommender",
		},
	}
	rec.ID = "event-id"
	rec.SetApprover(models.ARoleRecommender1, &rec1ID)
	rec.Recommender1 = rec.WaitingOn
	rec.SetApprovalState(models.ARoleRecommender1, models.AStatusPending, nil)
	rec.SetApprovalState(models.ARoleADM, models.AStatusNotRequired, nil)

	view := EventConvert(rec)
	require.Equal(t, "event-id", view.ID)
	require.Equal(t, "Jane Doe", view.TravellerName)
	require.Equal(t, "2020-2021", view.FiscalYearName)
	require.Equal(t, "Rick Recommender", view.WaitingOnName)
	require.Equal(t, "Submitted - Pending Recommendation", view.StatusName)
	require.Len(t, view.Approvals, models.ApprovalChainLen)
	require.Equal(t, models.ARoleRecommender1, view.Approvals[0].Role)
	require.Equal(t, "Rick Recommender", view.Approvals[0].ApproverName)
	require.Equal(t, models.AStatusPending, view.Approvals[0].Status)
	require.Equal(t, "n/a", view.Approvals[3].Text)
}

func TestApprovalData(t *testing.T) {
	t.Run(`approvers Validate check`, func(t *testing.T) {
		require.Nil(t, EventApproversData{Recommender1ID: "a", AdmID: "b"}.Validate())
		require.NotNil(t, EventApproversData{Recommender1ID: "a", RdgID: "a"}.Validate())
	})

	t.Run(`decision Validate check`, func(t *testing.T) {
		require.Nil(t, ApprovalDecisionData{}.Validate(models.DecisionApprove))
		require.NotNil(t, ApprovalDecisionData{}.Validate(models.DecisionDeny))
		require.Nil(t, ApprovalDecisionData{Comment: "over budget"}.Validate(models.DecisionDeny))
	})
}
