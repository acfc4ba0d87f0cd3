// internal/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Report is a weather-augmented compliance record filed by one employee for
// one site. Only drafts may be edited or deleted; submitting freezes the row.
// The weather snapshot is denormalized onto the report so the record stands
// on its own after the fact.
type Report struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	SiteID     uuid.UUID `gorm:"type:uuid;not null;index" json:"site_id"`
	ReportDate time.Time `gorm:"not null" json:"report_date"`
	IsDraft    bool      `gorm:"not null;default:true" json:"is_draft"`

	// Weather snapshot at filing time. Estimated readings are always flagged;
	// an estimate must never be indistinguishable from a real observation.
	TemperatureC     float64 `json:"temperature_c"`
	Conditions       string  `gorm:"type:text" json:"conditions"`
	PrecipitationMm  float64 `json:"precipitation_mm"`
	SnowfallCm       float64 `json:"snowfall_cm"`
	WindSpeedKmh     float64 `json:"wind_speed_kmh"`
	WeatherEstimated bool    `gorm:"not null;default:false" json:"weather_estimated"`

	SaltUsedKg float64 `json:"salt_used_kg"`
	Plowed     bool    `json:"plowed"`
	Salted     bool    `json:"salted"`
	Sanded     bool    `json:"sanded"`
	Notes      string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Site     Site     `gorm:"foreignKey:SiteID" json:"-"`
}
