package model

import "time"

// ApiKey lookups match on the full composite key; a student id with the wrong
// name finds nothing.
type ApiKey struct {
	StudentId string    `gorm:"type:varchar(32);primaryKey"`
	Name      string    `gorm:"type:varchar(100);primaryKey"`
	ApiKey    string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
