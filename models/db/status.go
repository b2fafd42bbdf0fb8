package dbmodels

import "travel-tools-backend/models"

// Status справочник статусов, заполняется при старте и не меняется.
// Коды approved/denied есть и у этапов, и у заявок, поэтому ключ составной
type Status struct {
	Code     string               `gorm:"primaryKey;type:varchar(50)"`
	UsedFor  models.StatusUsedFor `gorm:"primaryKey;autoIncrement:false"`
	Name     string               `gorm:"type:varchar(255)"`
	Nom      string               `gorm:"type:varchar(255)"`
	Order    int
	Color    string `gorm:"type:varchar(10)"`
	LegacyID int
}

type Role struct {
	BaseModel
	Name string `gorm:"type:varchar(100)"`
	Nom  string `gorm:"type:varchar(100)"`
}

type Reason struct {
	BaseModel
	Name string `gorm:"type:varchar(100)"`
	Nom  string `gorm:"type:varchar(100)"`
}

type Purpose struct {
	BaseModel
	Name           string `gorm:"type:varchar(100)"`
	Nom            string `gorm:"type:varchar(100)"`
	DescriptionEng string `gorm:"type:varchar(1000)"`
	DescriptionFre string `gorm:"type:varchar(1000)"`
}
