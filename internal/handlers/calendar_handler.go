package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httpresp"
	ucInspection "github.com/BruksfildServices01/inspection-scheduler/internal/usecase/inspection"
)

type CalendarHandler struct {
	feedUC *ucInspection.CalendarFeed
}

func NewCalendarHandler(feedUC *ucInspection.CalendarFeed) *CalendarHandler {
	return &CalendarHandler{feedUC: feedUC}
}

// Feed returns the inspections inside the visible range in the event
// shape the calendar widget consumes. The widget sends start/end as
// RFC3339 timestamps; plain dates are accepted as well.
func (h *CalendarHandler) Feed(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_start_or_end", "start and end are required.")
		return
	}

	start, err := parseCalendarTime(startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_format", "start must be RFC3339 or YYYY-MM-DD.")
		return
	}

	end, err := parseCalendarTime(endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_format", "end must be RFC3339 or YYYY-MM-DD.")
		return
	}

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_date_range", "end cannot be before start.")
		return
	}

	events, err := h.feedUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "internal_error", "Unexpected server error.")
		return
	}

	httpresp.List(c, events)
}

func parseCalendarTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
