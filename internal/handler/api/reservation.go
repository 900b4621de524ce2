package api

import (
	"net/http"
	"strings"

	reqdto "studio-calendar/internal/handler/dto/request"
	resdto "studio-calendar/internal/handler/dto/response"
	"studio-calendar/internal/handler/httperr"
	"studio-calendar/internal/handler/middleware"
	"studio-calendar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// @Summary Create reservation request
// @Description Request a room for whole hours. Anonymous callers must supply name, phone and email.
// @Description A retry carrying the same Idempotency-Key and body returns the first result with 200.
// @Tags reservations
// @Accept json
// @Produce json
// @Param studioId path string true "Studio ID"
// @Param roomId path string true "Room ID"
// @Param Idempotency-Key header string false "Client retry key, at most 255 characters"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /studios/{studioId}/rooms/{roomId}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	studioID, ok := pathUUID(c, "studioId")
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	input := req.ToInput(studioID, roomID, middleware.AccountIDPtr(c))
	input.IdempotencyKey = strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), input)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromCreateResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.Replayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Decide reservation request
// @Description Approve or reject a pending request. Repeating the current decision is a no-op.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation request ID"
// @Param request body reqdto.DecideReservationRequest true "Decision"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/decision [post]
func (h *ReservationHandler) DecideReservation(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.reservationCommands.DecideReservation(c.Request.Context(), requestID, req.ToAction(), accountID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromDecideResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
