package eventapimodels

import (
	"time"
	"travel-tools-backend/lib/utils/helpers"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
)

type EventCostsData struct {
	Air                  *float64 `json:"air"`                    // авиабилеты
	Rail                 *float64 `json:"rail"`                   // ж/д билеты
	RentalMotorVehicle   *float64 `json:"rental_motor_vehicle"`   // аренда автомобиля
	PersonalMotorVehicle *float64 `json:"personal_motor_vehicle"` // личный автомобиль
	Taxi                 *float64 `json:"taxi"`                   // такси
	OtherTransport       *float64 `json:"other_transport"`        // прочий транспорт
	Accommodations       *float64 `json:"accommodations"`         // проживание
	Meals                *float64 `json:"meals"`                  // питание
	Incidentals          *float64 `json:"incidentals"`            // непредвиденные расходы
	Registration         *float64 `json:"registration"`           // регистрационный взнос
	Other                *float64 `json:"other"`                  // прочие расходы
}

func (c EventCostsData) ToModel() dbmodels.EventCosts {
	return dbmodels.EventCosts{
		Air:                  c.Air,
		Rail:                 c.Rail,
		RentalMotorVehicle:   c.RentalMotorVehicle,
		PersonalMotorVehicle: c.PersonalMotorVehicle,
		Taxi:                 c.Taxi,
		OtherTransport:       c.OtherTransport,
		Accommodations:       c.Accommodations,
		Meals:                c.Meals,
		Incidentals:          c.Incidentals,
		Registration:         c.Registration,
		Other:                c.Other,
	}
}

func EventCostsConvert(c dbmodels.EventCosts) EventCostsData {
	return EventCostsData{
		Air:                  c.Air,
		Rail:                 c.Rail,
		RentalMotorVehicle:   c.RentalMotorVehicle,
		PersonalMotorVehicle: c.PersonalMotorVehicle,
		Taxi:                 c.Taxi,
		OtherTransport:       c.OtherTransport,
		Accommodations:       c.Accommodations,
		Meals:                c.Meals,
		Incidentals:          c.Incidentals,
		Registration:         c.Registration,
		Other:                c.Other,
	}
}

type EventData struct {
	IsGroupTrip                  bool       `json:"is_group_trip"`                  // групповая поездка
	ParentEventID                string     `json:"parent_event_id"`                // ид групповой заявки
	UserID                       string     `json:"user_id"`                        // ид путешественника
	Section                      string     `json:"section"`                        // подразделение
	FirstName                    string     `json:"first_name"`                     // имя
	LastName                     string     `json:"last_name"`                      // фамилия
	Address                      string     `json:"address"`                        // адрес
	Phone                        string     `json:"phone"`                          // телефон
	Email                        string     `json:"email"`                          // почта
	PublicServant                bool       `json:"public_servant"`                 // госслужащий
	CompanyName                  string     `json:"company_name"`                   // компания, если не госслужащий
	TripTitle                    string     `json:"trip_title"`                     // название поездки
	DepartureLocation            string     `json:"departure_location"`             // место отправления
	Destination                  string     `json:"destination"`                    // место назначения
	StartDate                    *time.Time `json:"start_date"`                     // дата начала
	EndDate                      *time.Time `json:"end_date"`                       // дата окончания
	IsRegisteredEvent            bool       `json:"is_registered_event"`            // поездка на зарегистрированное мероприятие
	RegisteredEventID            string     `json:"registered_event_id"`            // ид мероприятия
	RoleID                       string     `json:"role_id"`                        // роль участника
	ReasonID                     string     `json:"reason_id"`                      // причина поездки
	PurposeID                    string     `json:"purpose_id"`                     // цель поездки
	RoleOfParticipant            string     `json:"role_of_participant"`            // описание роли участника
	ObjectiveOfEvent             string     `json:"objective_of_event"`             // задачи мероприятия
	BenefitToDepartment          string     `json:"benefit_to_department"`          // польза для ведомства
	MultipleConferencesRationale string     `json:"multiple_conferences_rationale"` // обоснование нескольких конференций
	MultipleAttendeeRationale    string     `json:"multiple_attendee_rationale"`    // обоснование нескольких участников
	FundingSource                string     `json:"funding_source"`                 // источник финансирования
	Notes                        string     `json:"notes"`                          // заметки
	EventCostsData
}

func (v EventData) Validate() error {
	if v.TripTitle == "" {
		return errors.New("не указано название поездки")
	}
	if v.StartDate != nil && v.EndDate != nil && v.EndDate.Before(*v.StartDate) {
		return errors.New("дата окончания поездки раньше даты начала")
	}
	if v.IsRegisteredEvent && v.RegisteredEventID == "" {
		return errors.New("не указано зарегистрированное мероприятие")
	}
	return nil
}

// FillModel переносит редактируемые поля в запись, поля согласования не трогаются
func (v EventData) FillModel(rec *dbmodels.Event) {
	rec.IsGroupTrip = v.IsGroupTrip
	rec.ParentEventID = strPtr(v.ParentEventID)
	rec.UserID = strPtr(v.UserID)
	rec.Section = v.Section
	rec.FirstName = v.FirstName
	rec.LastName = v.LastName
	rec.Address = v.Address
	rec.Phone = v.Phone
	rec.Email = v.Email
	rec.PublicServant = v.PublicServant
	rec.CompanyName = v.CompanyName
	rec.TripTitle = v.TripTitle
	rec.DepartureLocation = v.DepartureLocation
	rec.Destination = v.Destination
	rec.StartDate = v.StartDate
	rec.EndDate = v.EndDate
	rec.IsRegisteredEvent = v.IsRegisteredEvent
	rec.RegisteredEventID = strPtr(v.RegisteredEventID)
	rec.RoleID = strPtr(v.RoleID)
	rec.ReasonID = strPtr(v.ReasonID)
	rec.PurposeID = strPtr(v.PurposeID)
	rec.RoleOfParticipant = v.RoleOfParticipant
	rec.ObjectiveOfEvent = v.ObjectiveOfEvent
	rec.BenefitToDepartment = v.BenefitToDepartment
	rec.MultipleConferencesRationale = v.MultipleConferencesRationale
	rec.MultipleAttendeeRationale = v.MultipleAttendeeRationale
	rec.FundingSource = v.FundingSource
	rec.Notes = v.Notes
	rec.EventCosts = v.EventCostsData.ToModel()
	rec.User = nil
	rec.RegisteredEvent = nil
	rec.Role = nil
	rec.Reason = nil
	rec.Purpose = nil
}

type ApprovalSlotView struct {
	Role         models.ApprovalRole   `json:"role"`
	RoleName     string                `json:"role_name"`
	ApproverID   string                `json:"approver_id"`
	ApproverName string                `json:"approver_name"`
	Status       models.ApprovalStatus `json:"status"`
	StatusName   string                `json:"status_name"`
	ApprovalDate *time.Time            `json:"approval_date"`
	Text         string                `json:"text"` // "Ann Adams (Approved on 2020-06-01)"
}

type EventView struct {
	EventData
	ID                  string             `json:"id"`
	CreationDate        time.Time          `json:"creation_date"`
	FiscalYear          *int               `json:"fiscal_year"`
	FiscalYearName      string             `json:"fiscal_year_name"`
	TravellerName       string             `json:"traveller_name"`
	RegisteredEventName string             `json:"registered_event_name"`
	RoleName            string             `json:"role_name"`
	ReasonName          string             `json:"reason_name"`
	PurposeName         string             `json:"purpose_name"`
	PurposeLongText     string             `json:"purpose_long_text"`
	TotalCost           float64            `json:"total_cost"`
	TotalTripCost       float64            `json:"total_trip_cost"`
	CostBreakdown       string             `json:"cost_breakdown"`
	Submitted           *time.Time         `json:"submitted"`
	Approvals           []ApprovalSlotView `json:"approvals"`
	WaitingOnID         string             `json:"waiting_on_id"`
	WaitingOnName       string             `json:"waiting_on_name"`
	Status              models.TripStatus  `json:"status"`
	StatusName          string             `json:"status_name"`
	ChildrenIDs         []string           `json:"children_ids,omitempty"`
}

func EventConvert(rec dbmodels.Event) EventView {
	result := EventView{
		EventData: EventData{
			IsGroupTrip:                  rec.IsGroupTrip,
			ParentEventID:                helpers.StrValue(rec.ParentEventID),
			UserID:                       helpers.StrValue(rec.UserID),
			Section:                      rec.Section,
			FirstName:                    rec.FirstName,
			LastName:                     rec.LastName,
			Address:                      rec.Address,
			Phone:                        rec.Phone,
			Email:                        rec.Email,
			PublicServant:                rec.PublicServant,
			CompanyName:                  rec.CompanyName,
			TripTitle:                    rec.TripTitle,
			DepartureLocation:            rec.DepartureLocation,
			Destination:                  rec.Destination,
			StartDate:                    rec.StartDate,
			EndDate:                      rec.EndDate,
			IsRegisteredEvent:            rec.IsRegisteredEvent,
			RegisteredEventID:            helpers.StrValue(rec.RegisteredEventID),
			RoleID:                       helpers.StrValue(rec.RoleID),
			ReasonID:                     helpers.StrValue(rec.ReasonID),
			PurposeID:                    helpers.StrValue(rec.PurposeID),
			RoleOfParticipant:            rec.RoleOfParticipant,
			ObjectiveOfEvent:             rec.ObjectiveOfEvent,
			BenefitToDepartment:          rec.BenefitToDepartment,
			MultipleConferencesRationale: rec.MultipleConferencesRationale,
			MultipleAttendeeRationale:    rec.MultipleAttendeeRationale,
			FundingSource:                rec.FundingSource,
			Notes:                        rec.Notes,
			EventCostsData:               EventCostsConvert(rec.EventCosts),
		},
		ID:              rec.ID,
		CreationDate:    rec.CreatedAt,
		FiscalYear:      rec.FiscalYear,
		TravellerName:   rec.GetTravellerName(),
		PurposeLongText: rec.PurposeLongText(),
		TotalCost:       rec.TotalCost,
		TotalTripCost:   rec.TotalTripCost(),
		CostBreakdown:   rec.CostBreakdown(),
		Submitted:       rec.Submitted,
		WaitingOnID:     helpers.StrValue(rec.WaitingOnID),
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
	}
	if rec.FiscalYear != nil {
		result.FiscalYearName = helpers.FiscalYearDisplay(*rec.FiscalYear)
	}
	if rec.RegisteredEvent != nil {
		result.RegisteredEventName = rec.RegisteredEvent.Name
	}
	if rec.Role != nil {
		result.RoleName = rec.Role.Name
	}
	if rec.Reason != nil {
		result.ReasonName = rec.Reason.Name
	}
	if rec.Purpose != nil {
		result.PurposeName = rec.Purpose.Name
	}
	if rec.WaitingOn != nil {
		result.WaitingOnName = rec.WaitingOn.GetFullName()
	}
	approvals := make([]ApprovalSlotView, 0, models.ApprovalChainLen)
	for _, role := range models.ApprovalChain {
		status := rec.GetApprovalStatus(role)
		slot := ApprovalSlotView{
			Role:         role,
			RoleName:     role.ToHuman(),
			ApproverID:   helpers.StrValue(rec.GetApproverID(role)),
			Status:       status,
			StatusName:   status.ToHuman(),
			ApprovalDate: rec.GetApprovalDate(role),
			Text:         rec.SlotStatusText(role),
		}
		if approver := rec.GetApprover(role); approver != nil {
			slot.ApproverName = approver.GetFullName()
		}
		approvals = append(approvals, slot)
	}
	result.Approvals = approvals
	for _, child := range rec.Children {
		result.ChildrenIDs = append(result.ChildrenIDs, child.ID)
	}
	return result
}

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
