package dbmodels

import (
	"fmt"
	"strings"
)

// TravelUser сотрудник: путешественник или согласующий
type TravelUser struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);index"`
	PhoneNumber string `gorm:"type:varchar(30)"`
	IsActive    bool
}

func (r TravelUser) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.FirstName, r.LastName))
}
