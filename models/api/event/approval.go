package eventapimodels

import (
	"time"
	"travel-tools-backend/lib/utils/helpers"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"

	"github.com/pkg/errors"
)

// EventApproversData согласующие по этапам, пустое значение - этап не требуется
type EventApproversData struct {
	Recommender1ID string `json:"recommender_1_id"`
	Recommender2ID string `json:"recommender_2_id"`
	Recommender3ID string `json:"recommender_3_id"`
	AdmID          string `json:"adm_id"`
	RdgID          string `json:"rdg_id"`
}

func (v EventApproversData) ByRole() map[models.ApprovalRole]string {
	return map[models.ApprovalRole]string{
		models.ARoleRecommender1: v.Recommender1ID,
		models.ARoleRecommender2: v.Recommender2ID,
		models.ARoleRecommender3: v.Recommender3ID,
		models.ARoleADM:          v.AdmID,
		models.ARoleRDG:          v.RdgID,
	}
}

func (v EventApproversData) Validate() error {
	used := map[string]models.ApprovalRole{}
	byRole := v.ByRole()
	for _, role := range models.ApprovalChain {
		userID := byRole[role]
		if userID == "" {
			continue
		}
		if prevRole, ok := used[userID]; ok {
			return errors.Errorf("сотрудник уже указан на этапе %v", prevRole.ToHuman())
		}
		used[userID] = role
	}
	return nil
}

type ApprovalDecisionData struct {
	Comment string `json:"comment"`
}

func (v ApprovalDecisionData) Validate(decision models.ApprovalDecision) error {
	if decision == models.DecisionDeny && v.Comment == "" {
		return errors.New("отсутсвует комментарий")
	}
	return nil
}

type EventHistoryView struct {
	ID            string                 `json:"id"`
	CreatedAt     time.Time              `json:"created_at"`
	EventID       string                 `json:"event_id"`
	Role          models.ApprovalRole    `json:"role"`
	ActorID       string                 `json:"actor_id"`
	ActorName     string                 `json:"actor_name"`
	Status        models.TripStatus      `json:"status"`
	StatusName    string                 `json:"status_name"`
	WaitingOnID   string                 `json:"waiting_on_id"`
	WaitingOnName string                 `json:"waiting_on_name"`
	Comment       string                 `json:"comment"`
	Changes       dbmodels.EntityChanges `json:"changes"`
}

func EventHistoryConvert(rec dbmodels.EventHistory) EventHistoryView {
	result := EventHistoryView{
		ID:          rec.ID,
		CreatedAt:   rec.CreatedAt,
		EventID:     rec.EventID,
		Role:        rec.Role,
		ActorID:     helpers.StrValue(rec.ActorID),
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		WaitingOnID: helpers.StrValue(rec.WaitingOnID),
		Comment:     rec.Comment,
		Changes:     rec.Changes,
	}
	if rec.Actor != nil {
		result.ActorName = rec.Actor.GetFullName()
	}
	if rec.WaitingOn != nil {
		result.WaitingOnName = rec.WaitingOn.GetFullName()
	}
	return result
}
