package api

import (
	"net/http"

	reqdto "studio-calendar/internal/handler/dto/request"
	resdto "studio-calendar/internal/handler/dto/response"
	"studio-calendar/internal/handler/httperr"
	"studio-calendar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HappyHourHandler struct {
	happyHourCommands commands.HappyHourCommands
}

func NewHappyHourHandler(happyHourCommands commands.HappyHourCommands) *HappyHourHandler {
	return &HappyHourHandler{happyHourCommands: happyHourCommands}
}

// @Summary Replace happy-hour schedule
// @Description Replaces the room's weekly happy hours. Each enabled day runs from opening time to endTime.
// @Tags happy-hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param request body reqdto.HappyHourScheduleRequest true "Seven days, Monday first"
// @Success 200 {object} resdto.HappyHourRulesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomId}/happy-hours [put]
func (h *HappyHourHandler) ReplaceSchedule(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}

	var req reqdto.HappyHourScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	rules, err := h.happyHourCommands.ReplaceSchedule(c.Request.Context(), roomID, req.ToDays(), accountID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRules(roomID, rules))
}

// @Summary Import happy-hour slots
// @Description Folds concrete slots into weekly rules, keeping the longest slot per weekday and start.
// @Tags happy-hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param request body reqdto.ImportHappyHourSlotsRequest true "Slots"
// @Success 200 {object} resdto.HappyHourRulesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomId}/happy-hours/slots [post]
func (h *HappyHourHandler) ImportSlots(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}

	var req reqdto.ImportHappyHourSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	rules, err := h.happyHourCommands.ImportSlots(c.Request.Context(), roomID, req.ToInputs(), accountID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRules(roomID, rules))
}
