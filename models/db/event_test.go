package dbmodels

import (
	"testing"
	"time"
	"travel-tools-backend/models"

	"github.com/stretchr/testify/require"
)

func cost(v float64) *float64 {
	return &v
}

func TestEventCosts(t *testing.T) {
	t.Run(`CalcTotalCost check`, func(t *testing.T) {
		costs := EventCosts{}
		require.Equal(t, 0.0, costs.CalcTotalCost())

		costs = EventCosts{
			Air:                  cost(1000),
			Rail:                 cost(1),
			RentalMotorVehicle:   cost(2),
			PersonalMotorVehicle: cost(3),
			Taxi:                 cost(4),
			OtherTransport:       cost(5),
			Accommodations:       cost(6),
			Meals:                cost(7),
			Incidentals:          cost(8),
			Registration:         cost(9),
			Other:                cost(10),
		}
		require.Equal(t, 1055.0, costs.CalcTotalCost())

		costs.Rail = nil
		costs.Other = nil
		require.Equal(t, 1044.0, costs.CalcTotalCost())
	})

	t.Run(`CostBreakdown check`, func(t *testing.T) {
		costs := EventCosts{
			Air:   cost(1200),
			Taxi:  cost(35.5),
			Meals: cost(0),
		}
		require.Equal(t, "air fare costs: $1,200.00; taxi costs: $35.50; ", costs.CostBreakdown())
		require.Equal(t, "", EventCosts{}.CostBreakdown())
	})
}

func TestEvent(t *testing.T) {
	t.Run(`TotalTripCost check`, func(t *testing.T) {
		rec := Event{TotalCost: 100}
		require.Equal(t, 100.0, rec.TotalTripCost())

		rec.IsGroupTrip = true
		rec.Children = []Event{{TotalCost: 10}, {TotalCost: 15.5}}
		require.Equal(t, 25.5, rec.TotalTripCost())
	})

	t.Run(`GetTravellerName check`, func(t *testing.T) {
		rec := Event{FirstName: "Jane", LastName: "Doe"}
		require.Equal(t, "Jane Doe", rec.GetTravellerName())

		rec = Event{User: &TravelUser{FirstName: "John", LastName: "Smith"}}
		require.Equal(t, "John Smith", rec.GetTravellerName())
	})

	t.Run(`PurposeLongText check`, func(t *testing.T) {
		rec := Event{RoleOfParticipant: "speaker", FundingSource: "A-base"}
		require.Equal(t, "Role of Participant: speaker\nFunding source: A-base", rec.PurposeLongText())
	})

	t.Run(`approval slots check`, func(t *testing.T) {
		rec := Event{}
		for _, role := range models.ApprovalChain {
			require.Nil(t, rec.GetApproverID(role))
			require.Equal(t, "n/a", rec.SlotStatusText(role))
		}

		admID := "adm-id"
		rec.SetApprover(models.ARoleADM, &admID)
		rec.Adm = &TravelUser{BaseModel: BaseModel{ID: admID}, FirstName: "Ann", LastName: "Adams"}
		rec.SetApprovalState(models.ARoleADM, models.AStatusPending, nil)
		require.Equal(t, "adm-id", *rec.AdmID)
		require.Equal(t, "Ann Adams (Pending)", rec.SlotStatusText(models.ARoleADM))

		date := time.Date(2020, time.June, 1, 9, 0, 0, 0, time.UTC)
		rec.SetApprovalState(models.ARoleADM, models.AStatusApproved, &date)
		require.Equal(t, models.AStatusApproved, rec.AdmApprovalStatus)
		require.Equal(t, "Ann Adams (Approved on 2020-06-01)", rec.SlotStatusText(models.ARoleADM))

		otherID := "other-id"
		rec.SetApprover(models.ARoleADM, &otherID)
		require.Nil(t, rec.Adm)
		require.Equal(t, "other-id", *rec.GetApproverID(models.ARoleADM))
	})
}
