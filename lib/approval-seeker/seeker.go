// Package approvalseeker вычисляет общий статус заявки на поездку и того, от кого ждем решения.
//
// Seek не обращается к БД и не отправляет писем: вызывающий сохраняет результат
// и, если Result.Notify заполнен, отправляет запрос на согласование.
package approvalseeker

import (
	"time"
	"travel-tools-backend/lib/utils/helpers"
	"travel-tools-backend/models"
	dbmodels "travel-tools-backend/models/db"
)

// Slot этап цепочки согласования
type Slot struct {
	ApproverID *string
	Status     models.ApprovalStatus
	DecidedAt  *time.Time
}

func (s Slot) IsAssigned() bool {
	return s.ApproverID != nil && *s.ApproverID != ""
}

// Chain состояние согласования заявки, этапы в порядке models.ApprovalChain
type Chain struct {
	Submitted   *time.Time
	Slots       [models.ApprovalChainLen]Slot
	WaitingOnID *string
	Status      models.TripStatus
}

// Result новое состояние согласования
type Result struct {
	Slots       [models.ApprovalChainLen]Slot
	Status      models.TripStatus
	WaitingOnID *string
	// Notify этап, согласующему которого нужно отправить запрос; nil если ожидаемый не поменялся
	Notify *models.ApprovalRole
}

func Seek(chain Chain) Result {
	result := Result{
		Slots:       chain.Slots,
		Status:      chain.Status,
		WaitingOnID: chain.WaitingOnID,
	}
	// отказ на любом этапе закрывает заявку, ожидающий остается прежним
	// отказ на любом этапе, дальше никто ничего не ждет
	for _, slot := range chain.Slots {
		if slot.Status == models.AStatusDenied {
			result.Status = models.TripStatusDenied
			return result
		}
	}

	if chain.Submitted == nil {
		// черновик: все согласования сбрасываются
		for idx := range result.Slots {
			result.Slots[idx].Status = models.AStatusNotRequired
			result.Slots[idx].DecidedAt = nil
		}
		result.WaitingOnID = nil
		result.Status = models.TripStatusDraft
		return result
	}

	for idx, slot := range result.Slots {
		if slot.IsAssigned() && slot.Status == models.AStatusNotRequired {
			result.Slots[idx].Status = models.AStatusPending
		}
	}

	for idx, slot := range result.Slots {
		if !slot.IsAssigned() || slot.DecidedAt != nil {
			continue
		}
		role := models.ApprovalChain[idx]
		if !helpers.SameStrPtr(chain.WaitingOnID, slot.ApproverID) {
			result.Notify = &role
		}
		approverID := *slot.ApproverID
		result.WaitingOnID = &approverID
		result.Status = role.PendingStatus()
		return result
	}

	result.Status = models.TripStatusApproved
	result.WaitingOnID = nil
	return result
}

// Pending этап, решение по которому ожидается сейчас
func (r Result) Pending() (role models.ApprovalRole, ok bool) {
	if !r.Status.IsPending() {
		return "", false
	}
	for idx, slot := range r.Slots {
		if slot.IsAssigned() && slot.DecidedAt == nil {
			return models.ApprovalChain[idx], true
		}
	}
	return "", false
}

// FromEvent собирает состояние согласования из заявки
func FromEvent(rec *dbmodels.Event) Chain {
	chain := Chain{
		Submitted:   rec.Submitted,
		WaitingOnID: rec.WaitingOnID,
		Status:      rec.Status,
	}
	for idx, role := range models.ApprovalChain {
		chain.Slots[idx] = Slot{
			ApproverID: rec.GetApproverID(role),
			Status:     rec.GetApprovalStatus(role),
			DecidedAt:  rec.GetApprovalDate(role),
		}
	}
	return chain
}

// ApplyTo переносит вычисленное состояние в заявку
func (r Result) ApplyTo(rec *dbmodels.Event) {
	for idx, role := range models.ApprovalChain {
		rec.SetApprovalState(role, r.Slots[idx].Status, r.Slots[idx].DecidedAt)
	}
	if !helpers.SameStrPtr(rec.WaitingOnID, r.WaitingOnID) {
		rec.WaitingOn = nil
	}
	rec.WaitingOnID = r.WaitingOnID
	rec.Status = r.Status
}
