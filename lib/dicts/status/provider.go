package statusprovider

import (
	"travel-tools-backend/db"
	statusstore "travel-tools-backend/lib/dicts/status/store"
	"travel-tools-backend/models"
	dictapimodels "travel-tools-backend/models/api/dict"
	dbmodels "travel-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

var statusColors = map[string]string{
	string(models.AStatusPending):                  "#fff3cd",
	string(models.AStatusApproved):                 "#d4edda",
	string(models.AStatusDenied):                   "#f8d7da",
	string(models.AStatusNotRequired):              "#e2e3e5",
	string(models.TripStatusDraft):                 "#e2e3e5",
	string(models.TripStatusSubmitted):             "#cce5ff",
	string(models.TripStatusPendingRecommendation): "#fff3cd",
	string(models.TripStatusPendingADMApproval):    "#fff3cd",
	string(models.TripStatusPendingRDGApproval):    "#fff3cd",
}

var statusNom = map[string]string{
	string(models.AStatusPending):                  "En attente",
	string(models.AStatusApproved):                 "Approuvé",
	string(models.AStatusDenied):                   "Refusé",
	string(models.AStatusNotRequired):              "Non requis",
	string(models.TripStatusDraft):                 "Ébauche",
	string(models.TripStatusSubmitted):             "Soumis",
	string(models.TripStatusPendingRecommendation): "Soumis - en attente de recommandation",
	string(models.TripStatusPendingADMApproval):    "En attente de l'approbation du SMA",
	string(models.TripStatusPendingRDGApproval):    "En attente de l'approbation du DGR",
}

type Provider interface {
	List(usedFor models.StatusUsedFor) (list []dictapimodels.StatusView, err error)
	Fill() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: statusstore.NewInstance(db.DB),
	}
}

type impl struct {
	store statusstore.Provider
}

func (i impl) List(usedFor models.StatusUsedFor) (list []dictapimodels.StatusView, err error) {
	recList, err := i.store.List(usedFor)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.StatusView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.StatusConvert(rec))
	}
	return result, nil
}

// Fill заполняет справочник статусов значениями перечислений
func (i impl) Fill() error {
	for _, rec := range Statuses() {
		err := i.store.Upsert(rec)
		if err != nil {
			return err
		}
	}
	log.Info("справочник статусов заполнен")
	return nil
}

func Statuses() []dbmodels.Status {
	result := make([]dbmodels.Status, 0, len(models.ApprovalStatuses)+len(models.TripStatuses))
	for idx, status := range models.ApprovalStatuses {
		result = append(result, newStatus(string(status), models.StatusUsedForApproval, status.ToHuman(), idx, status.LegacyID()))
	}
	for idx, status := range models.TripStatuses {
		result = append(result, newStatus(string(status), models.StatusUsedForTrip, status.ToHuman(), idx, status.LegacyID()))
	}
	return result
}

func newStatus(code string, usedFor models.StatusUsedFor, name string, order, legacyID int) dbmodels.Status {
	return dbmodels.Status{
		Code:     code,
		UsedFor:  usedFor,
		Name:     name,
		Nom:      statusNom[code],
		Order:    order + 1,
		Color:    statusColors[code],
		LegacyID: legacyID,
	}
}
