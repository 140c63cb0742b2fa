package domain

import "time"

// Timestamps holds the creation and modification times shared by all entities
type Timestamps struct {
	CreatedDate  time.Time `gorm:"column:created_date;not null;autoCreateTime;index" json:"createdDate"`
	ModifiedDate time.Time `gorm:"column:modified_date;not null;autoUpdateTime" json:"modifiedDate"`
}
