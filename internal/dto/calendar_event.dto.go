package dto

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

// CalendarEventDTO is the shape the calendar widget consumes.
type CalendarEventDTO struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Start         string             `json:"start"`
	End           string             `json:"end"`
	ExtendedProps CalendarEventProps `json:"extendedProps"`
}

type CalendarEventProps struct {
	ClientName   string `json:"clientName"`
	PhoneNumber  string `json:"phoneNumber"`
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	LicensePlate string `json:"licensePlate"`
	CreatedBy    string `json:"createdBy"`
}

func CalendarEventFromModel(ins models.Inspection) CalendarEventDTO {
	return CalendarEventDTO{
		ID: ins.ID,
		Title: fmt.Sprintf(
			"%s - %s %s (%s)",
			ins.ClientName,
			ins.VehicleMake,
			ins.VehicleModel,
			ins.LicensePlate,
		),
		Start: ins.StartTime.Format(time.RFC3339),
		End:   ins.EndTime.Format(time.RFC3339),
		ExtendedProps: CalendarEventProps{
			ClientName:   ins.ClientName,
			PhoneNumber:  ins.PhoneNumber,
			VehicleMake:  ins.VehicleMake,
			VehicleModel: ins.VehicleModel,
			LicensePlate: ins.LicensePlate,
			CreatedBy:    ins.CreatedByUser.Name,
		},
	}
}
