package dbmodels

import (
	"fmt"
	"strings"
	"time"
	"travel-tools-backend/lib/utils/helpers"
	"travel-tools-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Event заявка на поездку
type Event struct {
	BaseModel
	FiscalYear    *int    `gorm:"index"`
	IsGroupTrip   bool    // групповая поездка, участники оформлены дочерними заявками
	ParentEventID *string `gorm:"type:varchar(36);index"`
	Children      []Event `gorm:"foreignKey:ParentEventID"`

	// путешественник
	UserID        *string     `gorm:"type:varchar(36);index"`
	User          *TravelUser `gorm:"foreignKey:UserID"`
	Section       string      `gorm:"type:varchar(255)"`
	FirstName     string      `gorm:"type:varchar(100)"`
	LastName      string      `gorm:"type:varchar(100)"`
	Address       string      `gorm:"type:varchar(1000)"`
	Phone         string      `gorm:"type:varchar(1000)"`
	Email         string      `gorm:"type:varchar(255)"`
	PublicServant bool
	CompanyName   string `gorm:"type:varchar(255)"`

	// поездка
	TripTitle         string `gorm:"type:varchar(1000)"`
	DepartureLocation string `gorm:"type:varchar(1000)"`
	Destination       string `gorm:"type:varchar(1000)"`
	StartDate         *time.Time
	EndDate           *time.Time
	IsRegisteredEvent bool
	RegisteredEventID *string          `gorm:"type:varchar(36);index"`
	RegisteredEvent   *RegisteredEvent `gorm:"foreignKey:RegisteredEventID"`
	RoleID            *string          `gorm:"type:varchar(36)"`
	Role              *Role            `gorm:"foreignKey:RoleID"`
	ReasonID          *string          `gorm:"type:varchar(36)"`
	Reason            *Reason          `gorm:"foreignKey:ReasonID"`
	PurposeID         *string          `gorm:"type:varchar(36)"`
	Purpose           *Purpose         `gorm:"foreignKey:PurposeID"`

	// цель поездки
	RoleOfParticipant            string
	ObjectiveOfEvent             string
	BenefitToDepartment          string
	MultipleConferencesRationale string
	MultipleAttendeeRationale    string
	FundingSource                string
	Notes                        string

	EventCosts
	TotalCost float64

	// согласование
	Submitted                  *time.Time
	Recommender1ID             *string               `gorm:"type:varchar(36)"`
	Recommender1               *TravelUser           `gorm:"foreignKey:Recommender1ID"`
	Recommender2ID             *string               `gorm:"type:varchar(36)"`
	Recommender2               *TravelUser           `gorm:"foreignKey:Recommender2ID"`
	Recommender3ID             *string               `gorm:"type:varchar(36)"`
	Recommender3               *TravelUser           `gorm:"foreignKey:Recommender3ID"`
	AdmID                      *string               `gorm:"type:varchar(36)"`
	Adm                        *TravelUser           `gorm:"foreignKey:AdmID"`
	RdgID                      *string               `gorm:"type:varchar(36)"`
	Rdg                        *TravelUser           `gorm:"foreignKey:RdgID"`
	Recommender1ApprovalStatus models.ApprovalStatus `gorm:"type:varchar(50);default:not_required"`
	Recommender2ApprovalStatus models.ApprovalStatus `gorm:"type:varchar(50);default:not_required"`
	Recommender3ApprovalStatus models.ApprovalStatus `gorm:"type:varchar(50);default:not_required"`
	AdmApprovalStatus          models.ApprovalStatus `gorm:"type:varchar(50);default:not_required"`
	RdgApprovalStatus          models.ApprovalStatus `gorm:"type:varchar(50);default:not_required"`
	Recommender1ApprovalDate   *time.Time
	Recommender2ApprovalDate   *time.Time
	Recommender3ApprovalDate   *time.Time
	AdmApprovalDate            *time.Time
	RdgApprovalDate            *time.Time
	WaitingOnID                *string               `gorm:"type:varchar(36);index"`
	WaitingOn                  *TravelUser           `gorm:"foreignKey:WaitingOnID"`
	Status                     models.TripStatus     `gorm:"type:varchar(50);index;default:draft"`
}

// EventCosts статьи расходов, пустое значение считается нулем
type EventCosts struct {
	Air                  *float64
	Rail                 *float64
	RentalMotorVehicle   *float64
	PersonalMotorVehicle *float64
	Taxi                 *float64
	OtherTransport       *float64
	Accommodations       *float64
	Meals                *float64
	Incidentals          *float64
	Registration         *float64
	Other                *float64
}

type costItem struct {
	label string
	value *float64
}

func (c EventCosts) items() []costItem {
	return []costItem{
		{"air fare costs", c.Air},
		{"rail costs", c.Rail},
		{"rental motor vehicles costs", c.RentalMotorVehicle},
		{"personal motor vehicles costs", c.PersonalMotorVehicle},
		{"taxi costs", c.Taxi},
		{"other transport costs", c.OtherTransport},
		{"accommodation costs", c.Accommodations},
		{"meal costs", c.Meals},
		{"incidental costs", c.Incidentals},
		{"registration", c.Registration},
		{"other costs", c.Other},
	}
}

func (c EventCosts) CalcTotalCost() float64 {
	total := 0.0
	for _, item := range c.items() {
		total += helpers.NZ(item.value)
	}
	return total
}

// CostBreakdown перечень ненулевых расходов: "air fare costs: $1,200.00; taxi costs: $35.50; "
func (c EventCosts) CostBreakdown() string {
	var sb strings.Builder
	for _, item := range c.items() {
		value := helpers.NZ(item.value)
		if value == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s; ", item.label, helpers.FormatCurrency(value)))
	}
	return sb.String()
}

func (e Event) GetTravellerName() string {
	name := strings.TrimSpace(fmt.Sprintf("%s %s", e.FirstName, e.LastName))
	if name == "" && e.User != nil {
		return e.User.GetFullName()
	}
	return name
}

// TotalTripCost для групповой поездки сумма по участникам, иначе стоимость самой заявки
func (e Event) TotalTripCost() float64 {
	if !e.IsGroupTrip {
		return e.TotalCost
	}
	total := 0.0
	for _, child := range e.Children {
		total += child.TotalCost
	}
	return total
}

func (e Event) PurposeLongText() string {
	parts := []string{}
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", label, value))
		}
	}
	add("Role of Participant", e.RoleOfParticipant)
	add("Objective of Event", e.ObjectiveOfEvent)
	add("Benefit to Department", e.BenefitToDepartment)
	add("Rationale for attending multiple conferences", e.MultipleConferencesRationale)
	add("Rationale for multiple attendees", e.MultipleAttendeeRationale)
	add("Funding source", e.FundingSource)
	return strings.Join(parts, "\n")
}

type approvalSlotRef struct {
	approverID **string
	approver   **TravelUser
	status     *models.ApprovalStatus
	date       **time.Time
}

func (e *Event) slot(role models.ApprovalRole) approvalSlotRef {
	switch role {
	case models.ARoleRecommender1:
		return approvalSlotRef{&e.Recommender1ID, &e.Recommender1, &e.Recommender1ApprovalStatus, &e.Recommender1ApprovalDate}
	case models.ARoleRecommender2:
		return approvalSlotRef{&e.Recommender2ID, &e.Recommender2, &e.Recommender2ApprovalStatus, &e.Recommender2ApprovalDate}
	case models.ARoleRecommender3:
		return approvalSlotRef{&e.Recommender3ID, &e.Recommender3, &e.Recommender3ApprovalStatus, &e.Recommender3ApprovalDate}
	case models.ARoleADM:
		return approvalSlotRef{&e.AdmID, &e.Adm, &e.AdmApprovalStatus, &e.AdmApprovalDate}
	case models.ARoleRDG:
		return approvalSlotRef{&e.RdgID, &e.Rdg, &e.RdgApprovalStatus, &e.RdgApprovalDate}
	}
	panic(fmt.Sprintf("неизвестный этап согласования: %v", role))
}

func (e *Event) GetApproverID(role models.ApprovalRole) *string {
	return *e.slot(role).approverID
}

func (e *Event) GetApprover(role models.ApprovalRole) *TravelUser {
	return *e.slot(role).approver
}

func (e *Event) GetApprovalStatus(role models.ApprovalRole) models.ApprovalStatus {
	return *e.slot(role).status
}

func (e *Event) GetApprovalDate(role models.ApprovalRole) *time.Time {
	return *e.slot(role).date
}

// SetApprover назначает согласующего на этап; загруженная связь сбрасывается, если ИД поменялся
func (e *Event) SetApprover(role models.ApprovalRole, userID *string) {
	ref := e.slot(role)
	if user := *ref.approver; user != nil && (userID == nil || user.ID != *userID) {
		*ref.approver = nil
	}
	*ref.approverID = userID
}

func (e *Event) SetApprovalState(role models.ApprovalRole, status models.ApprovalStatus, date *time.Time) {
	ref := e.slot(role)
	*ref.status = status
	*ref.date = date
}

// SlotStatusText описание состояния этапа для отображения
func (e *Event) SlotStatusText(role models.ApprovalRole) string {
	if e.GetApproverID(role) == nil {
		return "n/a"
	}
	name := ""
	if approver := e.GetApprover(role); approver != nil {
		name = approver.GetFullName()
	}
	status := e.GetApprovalStatus(role)
	date := e.GetApprovalDate(role)
	if status.IsDecided() && date != nil {
		return fmt.Sprintf("%s (%s on %s)", name, status.ToHuman(), date.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s (%s)", name, status.ToHuman())
}

func (e *Event) AfterDelete(tx *gorm.DB) (err error) {
	if e.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("event_id = ?", e.ID).Delete(&EventHistory{})
	return
}
