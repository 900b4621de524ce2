package api

import (
	"bytes"
	"fmt"
	"net/http"

	reqdto "studio-calendar/internal/handler/dto/request"
	resdto "studio-calendar/internal/handler/dto/response"
	"studio-calendar/internal/handler/httperr"
	"studio-calendar/internal/handler/middleware"
	"studio-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarQueries  queries.CalendarQueries
	occupancyQueries queries.OccupancyQueries
	exportQueries    queries.ExportQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries, occupancyQueries queries.OccupancyQueries, exportQueries queries.ExportQueries) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries:  calendarQueries,
		occupancyQueries: occupancyQueries,
		exportQueries:    exportQueries,
	}
}

// @Summary List calendar entries
// @Description Blocks, happy-hour instances and, for the owner, pending requests in [from, to).
// @Tags calendar
// @Produce json
// @Param studioId path string true "Studio ID"
// @Param roomIds query string false "Comma separated room IDs"
// @Param from query string true "RFC3339 range start"
// @Param to query string true "RFC3339 range end"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /studios/{studioId}/calendar [get]
func (h *CalendarHandler) ListCalendarEntries(c *gin.Context) {
	studioID, ok := pathUUID(c, "studioId")
	if !ok {
		return
	}

	var q reqdto.CalendarRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}
	roomIDs, err := q.ParseRoomIDs()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.calendarQueries.ListCalendarEntries(c.Request.Context(), studioID, roomIDs, q.From, q.To, middleware.AccountIDPtr(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromCalendarView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Occupancy summary
// @Description Current business week and month occupancy plus month revenue.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param studioId path string true "Studio ID"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /studios/{studioId}/occupancy [get]
func (h *CalendarHandler) GetOccupancySummary(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	studioID, ok := pathUUID(c, "studioId")
	if !ok {
		return
	}

	view, err := h.occupancyQueries.GetOccupancySummary(c.Request.Context(), studioID, accountID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromOccupancyView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Export calendar
// @Description Owner-only spreadsheet of blocks, pending requests and happy hours in [from, to).
// @Tags calendar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param studioId path string true "Studio ID"
// @Param from query string true "RFC3339 range start"
// @Param to query string true "RFC3339 range end"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /studios/{studioId}/calendar/export.xlsx [get]
func (h *CalendarHandler) ExportCalendar(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	studioID, ok := pathUUID(c, "studioId")
	if !ok {
		return
	}

	var q reqdto.CalendarRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	// buffered so a failed export still gets a JSON error body
	var buf bytes.Buffer
	if err := h.exportQueries.ExportCalendar(c.Request.Context(), studioID, q.From, q.To, accountID, &buf); err != nil {
		httperr.Abort(c, err)
		return
	}

	filename := fmt.Sprintf("calendar-%s-%s.xlsx", studioID, q.From.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, h.exportQueries.ContentType(), buf.Bytes())
}
