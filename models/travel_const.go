package models

import "github.com/pkg/errors"

// ApprovalStatus статус решения по одному этапу согласования
type ApprovalStatus string

const (
	AStatusPending     ApprovalStatus = "pending"
	AStatusApproved    ApprovalStatus = "approved"
	AStatusDenied      ApprovalStatus = "denied"
	AStatusNotRequired ApprovalStatus = "not_required"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	AStatusPending:     "Pending",
	AStatusApproved:    "Approved",
	AStatusDenied:      "Denied",
	AStatusNotRequired: "Not Required",
}

// идентификаторы статусов из справочника старой системы
var approvalStatusLegacyID = map[ApprovalStatus]int{
	AStatusPending:     1,
	AStatusApproved:    2,
	AStatusDenied:      3,
	AStatusNotRequired: 4,
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalStatus) LegacyID() int {
	return approvalStatusLegacyID[s]
}

func (s ApprovalStatus) IsValid() bool {
	_, ok := approvalStatusHumanName[s]
	return ok
}

// IsDecided решение принято, у этапа должна быть дата
func (s ApprovalStatus) IsDecided() bool {
	return s == AStatusApproved || s == AStatusDenied
}

var ApprovalStatuses = []ApprovalStatus{AStatusPending, AStatusApproved, AStatusDenied, AStatusNotRequired}

// TripStatus общий статус заявки на поездку
type TripStatus string

const (
	TripStatusDraft                 TripStatus = "draft"
	TripStatusSubmitted             TripStatus = "submitted"
	TripStatusDenied                TripStatus = "denied"
	TripStatusApproved              TripStatus = "approved"
	TripStatusPendingRecommendation TripStatus = "pending_recommendation"
	TripStatusPendingADMApproval    TripStatus = "pending_adm_approval"
	TripStatusPendingRDGApproval    TripStatus = "pending_rdg_approval"
)

var tripStatusHumanName = map[TripStatus]string{
	TripStatusDraft:                 "Draft",
	TripStatusSubmitted:             "Submitted",
	TripStatusDenied:                "Denied",
	TripStatusApproved:              "Approved",
	TripStatusPendingRecommendation: "Submitted - Pending Recommendation",
	TripStatusPendingADMApproval:    "Pending ADM Approval",
	TripStatusPendingRDGApproval:    "Pending RDG Approval",
}

var tripStatusLegacyID = map[TripStatus]int{
	TripStatusDraft:                 8,
	TripStatusSubmitted:             9,
	TripStatusDenied:                10,
	TripStatusApproved:              11,
	TripStatusPendingRecommendation: 12,
	TripStatusPendingADMApproval:    14,
	TripStatusPendingRDGApproval:    15,
}

func (s TripStatus) ToHuman() string {
	if human, exist := tripStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TripStatus) LegacyID() int {
	return tripStatusLegacyID[s]
}

func (s TripStatus) IsValid() bool {
	_, ok := tripStatusHumanName[s]
	return ok
}

// IsTerminal согласование завершено, дальше заявку можно только вернуть в черновик
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusApproved || s == TripStatusDenied
}

// IsPending заявка ждет решения одного из согласующих
func (s TripStatus) IsPending() bool {
	switch s {
	case TripStatusPendingRecommendation, TripStatusPendingADMApproval, TripStatusPendingRDGApproval:
		return true
	}
	return false
}

var TripStatuses = []TripStatus{
	TripStatusDraft,
	TripStatusSubmitted,
	TripStatusDenied,
	TripStatusApproved,
	TripStatusPendingRecommendation,
	TripStatusPendingADMApproval,
	TripStatusPendingRDGApproval,
}

// ApprovalRole этап цепочки согласования
type ApprovalRole string

const (
	ARoleRecommender1 ApprovalRole = "recommender_1"
	ARoleRecommender2 ApprovalRole = "recommender_2"
	ARoleRecommender3 ApprovalRole = "recommender_3"
	ARoleADM          ApprovalRole = "adm"
	ARoleRDG          ApprovalRole = "rdg"
)

// ApprovalChain порядок прохождения этапов, менять нельзя
var ApprovalChain = [ApprovalChainLen]ApprovalRole{
	ARoleRecommender1,
	ARoleRecommender2,
	ARoleRecommender3,
	ARoleADM,
	ARoleRDG,
}

const ApprovalChainLen = 5

var approvalRoleHumanName = map[ApprovalRole]string{
	ARoleRecommender1: "Recommender 1",
	ARoleRecommender2: "Recommender 2",
	ARoleRecommender3: "Recommender 3",
	ARoleADM:          "ADM",
	ARoleRDG:          "RDG",
}

func (r ApprovalRole) ToHuman() string {
	if human, exist := approvalRoleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r ApprovalRole) IsValid() bool {
	return r.Index() >= 0
}

// Index позиция этапа в цепочке, -1 для неизвестного этапа
func (r ApprovalRole) Index() int {
	for idx, role := range ApprovalChain {
		if role == r {
			return idx
		}
	}
	return -1
}

func (r ApprovalRole) IsRecommender() bool {
	switch r {
	case ARoleRecommender1, ARoleRecommender2, ARoleRecommender3:
		return true
	}
	return false
}

// PendingStatus статус заявки пока этап ожидает решения
func (r ApprovalRole) PendingStatus() TripStatus {
	switch r {
	case ARoleRecommender1, ARoleRecommender2, ARoleRecommender3:
		return TripStatusPendingRecommendation
	case ARoleADM:
		return TripStatusPendingADMApproval
	case ARoleRDG:
		return TripStatusPendingRDGApproval
	}
	panic(errors.Errorf("неизвестный этап согласования: %v", string(r)))
}

// NotifyKind шаблон письма для этапа
type NotifyKind string

const (
	NotifyKindRecommender NotifyKind = "recommender"
	NotifyKindAdmin       NotifyKind = "admin"
)

func (r ApprovalRole) NotifyKind() NotifyKind {
	if r.IsRecommender() {
		return NotifyKindRecommender
	}
	return NotifyKindAdmin
}

// StatusUsedFor назначение записи справочника статусов
type StatusUsedFor int

const (
	StatusUsedForApproval StatusUsedFor = 1
	StatusUsedForTrip     StatusUsedFor = 2
)

func (u StatusUsedFor) ToHuman() string {
	switch u {
	case StatusUsedForApproval:
		return "Approval status"
	case StatusUsedForTrip:
		return "Trip status"
	}
	return ""
}

// ApprovalDecision решение согласующего
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "approve"
	DecisionDeny    ApprovalDecision = "deny"
)

// ToStatus статус этапа после решения; ok=false для неизвестного решения
func (d ApprovalDecision) ToStatus() (status ApprovalStatus, ok bool) {
	switch d {
	case DecisionApprove:
		return AStatusApproved, true
	case DecisionDeny:
		return AStatusDenied, true
	}
	return "", false
}
