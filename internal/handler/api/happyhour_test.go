//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/handler/api"
	"studio-calendar/internal/usecase/commands"
	"studio-calendar/tests/common/builder"
	"studio-calendar/tests/common/httptest"
	commandsmock "studio-calendar/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HappyHourHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHappyHourCommands
	handler      *api.HappyHourHandler
	accountID    uuid.UUID
	roomID       uuid.UUID
}

func (s *HappyHourHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHappyHourCommands(s.mockCtrl)
	s.handler = api.NewHappyHourHandler(s.mockCommands)
	s.accountID = uuid.New()
	s.roomID = uuid.New()

	s.router.PUT("/rooms/:roomId/happy-hours", fakeAuth(s.accountID, true), s.handler.ReplaceSchedule)
	s.router.POST("/rooms/:roomId/happy-hours/slots", fakeAuth(s.accountID, true), s.handler.ImportSlots)
}

func (s *HappyHourHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHappyHourHandlerSuite(t *testing.T) {
	suite.Run(t, new(HappyHourHandlerTestSuite))
}

type ruleBody struct {
	RoomID uuid.UUID `json:"roomId"`
	Rules  []struct {
		Weekday      int    `json:"weekday"`
		StartMinutes int    `json:"startMinutes"`
		EndMinutes   int    `json:"endMinutes"`
		StartTime    string `json:"startTime"`
		EndTime      string `json:"endTime"`
	} `json:"rules"`
}

func weekForm(enabled map[int]string) map[string]any {
	days := make([]map[string]any, 7)
	for i := range days {
		end, ok := enabled[i]
		days[i] = map[string]any{"enabled": ok, "endTime": end}
	}
	return map[string]any{"days": days}
}

// ================================================================================
// TestReplaceSchedule
// ================================================================================

func (s *HappyHourHandlerTestSuite) TestReplaceSchedule() {
	path := "/rooms/" + s.roomID.String() + "/happy-hours"

	s.Run("success: returns the rebuilt rules", func() {
		s.mockCommands.EXPECT().ReplaceSchedule(gomock.Any(), s.roomID, gomock.Any(), s.accountID).
			DoAndReturn(func(_ any, _ uuid.UUID, days [7]happyhour.DaySchedule, _ uuid.UUID) ([]happyhour.Rule, error) {
				s.True(days[4].Enabled)
				s.Equal("02:00", days[4].EndTime)
				s.False(days[0].Enabled)
				return []happyhour.Rule{{RoomID: s.roomID, Weekday: 4, StartMinutes: 600, EndMinutes: 1560}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, weekForm(map[int]string{4: "02:00"}), "bearer-token")

		var body ruleBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.roomID, body.RoomID)
		s.Require().Len(body.Rules, 1)
		s.Equal(1560, body.Rules[0].EndMinutes)
		s.Equal("10:00", body.Rules[0].StartTime)
		s.Equal("02:00", body.Rules[0].EndTime)
	})

	s.Run("success: disabling every day returns an empty list", func() {
		s.mockCommands.EXPECT().ReplaceSchedule(gomock.Any(), s.roomID, gomock.Any(), s.accountID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, weekForm(nil), "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["rules"])
	})

	s.Run("error: 400 when the form does not have seven days", func() {
		form := map[string]any{"days": []map[string]any{{"enabled": true, "endTime": "13:00"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, form, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, weekForm(nil), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockCommands.EXPECT().ReplaceSchedule(gomock.Any(), s.roomID, gomock.Any(), s.accountID).Return(nil, commands.ErrNotStudioOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, weekForm(nil), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestImportSlots
// ================================================================================

func (s *HappyHourHandlerTestSuite) TestImportSlots() {
	path := "/rooms/" + s.roomID.String() + "/happy-hours/slots"
	tuesday := time.Date(2026, 3, 10, 18, 0, 0, 0, builder.KST)
	slots := map[string]any{"slots": []map[string]any{
		{"startAt": tuesday, "endAt": tuesday.Add(3 * time.Hour)},
	}}

	s.Run("success: folds slots into rules", func() {
		s.mockCommands.EXPECT().ImportSlots(gomock.Any(), s.roomID, gomock.Any(), s.accountID).
			DoAndReturn(func(_ any, _ uuid.UUID, in []commands.SlotInput, _ uuid.UUID) ([]happyhour.Rule, error) {
				s.Require().Len(in, 1)
				s.True(tuesday.Equal(in[0].StartAt))
				return []happyhour.Rule{{RoomID: s.roomID, Weekday: 1, StartMinutes: 1080, EndMinutes: 1260}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, slots, "bearer-token")

		var body ruleBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rules, 1)
		s.Equal("18:00", body.Rules[0].StartTime)
		s.Equal("21:00", body.Rules[0].EndTime)
	})

	s.Run("error: 400 on empty or malformed slots", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"slots": []any{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"slots": []map[string]any{{"startAt": tuesday}}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: usecase validation maps to 400", func() {
		s.mockCommands.EXPECT().ImportSlots(gomock.Any(), s.roomID, gomock.Any(), s.accountID).Return(nil, commands.ErrInvalidSlot)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, slots, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "slot end must be after")
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/abc/happy-hours/slots", slots, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid roomId format")
	})
}
