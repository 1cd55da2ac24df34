package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/inspection-scheduler/internal/middleware"
	ucInspection "github.com/BruksfildServices01/inspection-scheduler/internal/usecase/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type InspectionHandler struct {
	createUC   *ucInspection.CreateInspection
	updateUC   *ucInspection.UpdateInspection
	deleteUC   *ucInspection.DeleteInspection
	getUC      *ucInspection.GetInspection
	listUC     *ucInspection.ListInspections
	nextSlotUC *ucInspection.NextAvailableSlot
	statsUC    *ucInspection.Stats
}

func NewInspectionHandler(
	createUC *ucInspection.CreateInspection,
	updateUC *ucInspection.UpdateInspection,
	deleteUC *ucInspection.DeleteInspection,
	getUC *ucInspection.GetInspection,
	listUC *ucInspection.ListInspections,
	nextSlotUC *ucInspection.NextAvailableSlot,
	statsUC *ucInspection.Stats,
) *InspectionHandler {
	return &InspectionHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
		nextSlotUC: nextSlotUC,
		statsUC:    statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type InspectionRequest struct {
	VehicleMake  string `json:"vehicle_make" binding:"required,max=64"`
	VehicleModel string `json:"vehicle_model" binding:"required,max=64"`
	LicensePlate string `json:"license_plate" binding:"required,max=20"`
	ClientName   string `json:"client_name" binding:"required,max=64"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *InspectionHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	requestID := c.GetString(middleware.ContextRequestID)

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid inspection payload.")
		return
	}

	if !validators.IsPhoneNumberValid(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone_number", "Phone number must be 8-20 characters of digits, spaces or '+'.")
		return
	}

	ins, err := h.createUC.Execute(c.Request.Context(), ucInspection.CreateInspectionInput{
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		LicensePlate:    req.LicensePlate,
		ClientName:      req.ClientName,
		PhoneNumber:     req.PhoneNumber,
		Date:            req.Date,
		Time:            req.Time,
		CreatedByUserID: actorID,
		RequestID:       requestID,
	})
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":         ins.ID,
		"start_time": ins.StartTime.Format(time.RFC3339),
		"end_time":   ins.EndTime.Format(time.RFC3339),
	})
}

// ======================================================
// GET / LIST
// ======================================================

func (h *InspectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *InspectionHandler) List(c *gin.Context) {
	in := ucInspection.ListInspectionsInput{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      ucInspection.DefaultPage,
		Limit:     ucInspection.DefaultLimit,
	}

	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_page", "page must be a positive integer.")
			return
		}
		in.Page = n
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_limit", "limit must be an integer between 1 and 100.")
			return
		}
		in.Limit = n
	}

	if v := c.Query("createdByUserId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			httperr.BadRequest(c, "invalid_created_by", "createdByUserId must be a positive integer.")
			return
		}
		id := uint(n)
		in.CreatedByUserID = &id
	}

	out, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *InspectionHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	requestID := c.GetString(middleware.ContextRequestID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid inspection payload.")
		return
	}

	if !validators.IsPhoneNumberValid(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone_number", "Phone number must be 8-20 characters of digits, spaces or '+'.")
		return
	}

	ins, err := h.updateUC.Execute(c.Request.Context(), ucInspection.UpdateInspectionInput{
		ID:           id,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		LicensePlate: req.LicensePlate,
		ClientName:   req.ClientName,
		PhoneNumber:  req.PhoneNumber,
		Date:         req.Date,
		Time:         req.Time,
		ActorID:      actorID,
		RequestID:    requestID,
	})
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":         ins.ID,
		"start_time": ins.StartTime.Format(time.RFC3339),
		"end_time":   ins.EndTime.Format(time.RFC3339),
	})
}

func (h *InspectionHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	requestID := c.GetString(middleware.ContextRequestID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorID, requestID); err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// NEXT SLOT / STATS
// ======================================================

func (h *InspectionHandler) NextSlot(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_format", "date must be YYYY-MM-DD.")
		return
	}

	slot, err := h.nextSlotUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	if slot == nil {
		httpresp.OK(c, gin.H{"available": false})
		return
	}

	httpresp.OK(c, gin.H{
		"available": true,
		"start":     slot.Start.Format(time.RFC3339),
		"end":       slot.End.Format(time.RFC3339),
	})
}

func (h *InspectionHandler) Stats(c *gin.Context) {
	out, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		writeInspectionError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func writeInspectionError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httperr.ValidationFailed(c, verr.Violations)
		return
	}

	switch {
	case httperr.IsBusiness(err, "inspection_not_found"):
		httperr.NotFound(c, "inspection_not_found", "Inspection not found.")
	case httperr.IsBusiness(err, "past_inspection_readonly"):
		httperr.Forbidden(c, "past_inspection_readonly", "Past inspections cannot be modified.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "The slot was taken a moment ago. Pick another time.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "invalid_date_format"):
		httperr.BadRequest(c, "invalid_date_format", "Dates must use the YYYY-MM-DD format.")
	case httperr.IsBusiness(err, "invalid_date_range"):
		httperr.BadRequest(c, "invalid_date_range", "Start date cannot be after end date.")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.BadRequest(c, "user_not_found", "No user with the given id.")
	case httperr.IsBusiness(err, "invalid_page"):
		httperr.BadRequest(c, "invalid_page", "page must be a positive integer.")
	case httperr.IsBusiness(err, "invalid_limit"):
		httperr.BadRequest(c, "invalid_limit", "limit must be an integer between 1 and 100.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected server error.")
	}
}
