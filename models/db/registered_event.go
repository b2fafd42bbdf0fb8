package dbmodels

import "time"

// RegisteredEvent зарегистрированное мероприятие (конференция, совещание), на которое оформляются поездки
type RegisteredEvent struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);uniqueIndex"`
	Nom       string `gorm:"type:varchar(255)"`
	Number    *int
	StartDate time.Time
	EndDate   time.Time
	Trips     []Event `gorm:"foreignKey:RegisteredEventID"`
}
