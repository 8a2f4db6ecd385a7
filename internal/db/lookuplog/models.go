package lookuplog

import (
	"time"
)

type Lookup struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	PostalCode       string    `json:"postal_code" gorm:"index:idx_postal_code;index:idx_postal_code_created_at"`
	UTCOffsetHours   int       `json:"utc_offset_hours" gorm:"column:utc_offset_hours"`
	State            string    `json:"state" gorm:"column:state"`
	Stage            string    `json:"stage,omitempty" gorm:"column:stage"`
	Kind             string    `json:"kind,omitempty" gorm:"column:kind"`
	Temperature      *float64  `json:"temperature,omitempty" gorm:"column:temperature"`
	TemperatureUnit  string    `json:"temperature_unit,omitempty" gorm:"column:temperature_unit"`
	ShortDescription string    `json:"short_description,omitempty" gorm:"column:short_description"`
	CreatedAt        time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_postal_code_created_at"`
}

func (Lookup) TableName() string {
	return "local_info_lookups"
}
