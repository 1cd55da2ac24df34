package models

import (
	"time"

	"gorm.io/gorm"
)

// InspectionDuration is the fixed slot length. EndTime is always derived
// from StartTime, never set by callers.
const InspectionDuration = 30 * time.Minute

type Inspection struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"index;not null" json:"end_time"`

	VehicleMake  string `gorm:"size:64;not null" json:"vehicle_make"`
	VehicleModel string `gorm:"size:64;not null" json:"vehicle_model"`
	LicensePlate string `gorm:"size:20;not null" json:"license_plate"`
	ClientName   string `gorm:"size:64;not null" json:"client_name"`
	PhoneNumber  string `gorm:"size:20;not null" json:"phone_number"`

	CreatedByUserID uint `gorm:"index;not null" json:"created_by_user_id"`
	CreatedByUser   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"created_by_user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetStartTime is the single place the slot window is assigned.
// EndTime is recomputed here so it can never go stale.
func (i *Inspection) SetStartTime(start time.Time) {
	i.StartTime = start
	i.EndTime = start.Add(InspectionDuration)
}

// BeforeSave re-derives EndTime on every persist, so a write that
// bypassed SetStartTime still cannot break the 30-minute invariant.
func (i *Inspection) BeforeSave(tx *gorm.DB) error {
	if !i.StartTime.IsZero() {
		i.EndTime = i.StartTime.Add(InspectionDuration)
	}
	return nil
}

// IsPast reports whether the slot already started at the given time.
func (i *Inspection) IsPast(now time.Time) bool {
	return i.StartTime.Before(now)
}
