package dto

import (
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

type UserBasicDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type InspectionDTO struct {
	ID            uint         `json:"id"`
	StartTime     time.Time    `json:"start_time"`
	EndTime       time.Time    `json:"end_time"`
	VehicleMake   string       `json:"vehicle_make"`
	VehicleModel  string       `json:"vehicle_model"`
	LicensePlate  string       `json:"license_plate"`
	ClientName    string       `json:"client_name"`
	PhoneNumber   string       `json:"phone_number"`
	CreatedByUser UserBasicDTO `json:"created_by_user"`
	CreatedAt     time.Time    `json:"created_at"`
	IsPast        bool         `json:"is_past"`
}

type PaginationMetaDTO struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

type InspectionListDTO struct {
	Data []InspectionDTO   `json:"data"`
	Meta PaginationMetaDTO `json:"meta"`
}

// InspectionFromModel shapes a stored inspection for transport. IsPast is
// computed against now at response time.
func InspectionFromModel(ins models.Inspection, now time.Time) InspectionDTO {
	return InspectionDTO{
		ID:           ins.ID,
		StartTime:    ins.StartTime,
		EndTime:      ins.EndTime,
		VehicleMake:  ins.VehicleMake,
		VehicleModel: ins.VehicleModel,
		LicensePlate: ins.LicensePlate,
		ClientName:   ins.ClientName,
		PhoneNumber:  ins.PhoneNumber,
		CreatedByUser: UserBasicDTO{
			ID:   ins.CreatedByUserID,
			Name: ins.CreatedByUser.Name,
		},
		CreatedAt: ins.CreatedAt,
		IsPast:    ins.IsPast(now),
	}
}
