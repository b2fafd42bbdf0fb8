package dbmodels

import "travel-tools-backend/models"

// EventHistory история согласования заявки
type EventHistory struct {
	BaseModel
	EventID     string              `gorm:"type:varchar(36);index"`
	Role        models.ApprovalRole `gorm:"type:varchar(50)"`
	ActorID     *string             `gorm:"type:varchar(36)"`
	Actor       *TravelUser         `gorm:"foreignKey:ActorID"`
	Status      models.TripStatus   `gorm:"type:varchar(50)"`
	WaitingOnID *string             `gorm:"type:varchar(36)"`
	WaitingOn   *TravelUser         `gorm:"foreignKey:WaitingOnID"`
	Comment     string
	Changes     EntityChanges `gorm:"type:jsonb"`
}
