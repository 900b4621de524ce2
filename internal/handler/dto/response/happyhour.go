package response

import (
	"fmt"

	"studio-calendar/internal/domain/happyhour"

	"github.com/google/uuid"
)

type HappyHourRuleResponse struct {
	Weekday      int    `json:"weekday"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type HappyHourRulesResponse struct {
	RoomID uuid.UUID               `json:"roomId"`
	Rules  []HappyHourRuleResponse `json:"rules"`
}

func FromRules(roomID uuid.UUID, rules []happyhour.Rule) *HappyHourRulesResponse {
	out := &HappyHourRulesResponse{RoomID: roomID, Rules: make([]HappyHourRuleResponse, len(rules))}
	for i, r := range rules {
		out.Rules[i] = HappyHourRuleResponse{
			Weekday:      r.Weekday,
			StartMinutes: r.StartMinutes,
			EndMinutes:   r.EndMinutes,
			StartTime:    clockLabel(r.StartMinutes),
			EndTime:      clockLabel(r.EndMinutes),
		}
	}
	return out
}

// clockLabel wraps offsets past midnight back onto the clock face.
func clockLabel(minutes int) string {
	m := minutes % (24 * 60)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
