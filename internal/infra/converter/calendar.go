package converter

import (
	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/pgconv"
)

func BlockToInfra(b *calendar.Block) pgquery.CreateCalendarBlockParams {
	return pgquery.CreateCalendarBlockParams{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		StartAt:   b.StartAt(),
		EndAt:     b.EndAt(),
		EntryType: string(b.Type()),
		Status:    string(b.Status()),
		Title:     b.Title(),
		Note:      b.Note(),
		CreatedBy: pgconv.UUIDPtrToPgtype(b.CreatedBy()),
		CreatedAt: b.CreatedAt(),
	}
}

func EntryToDomain(row pgquery.ListActiveEntriesRow) calendar.Entry {
	return calendar.Entry{
		ID:      row.ID,
		RoomID:  row.RoomID,
		StartAt: row.StartAt,
		EndAt:   row.EndAt,
		Type:    calendar.EntryType(row.EntryType),
		Status:  calendar.Status(row.Status),
	}
}

func RuleToInfra(r happyhour.Rule) pgquery.CreateHappyHourRuleParams {
	// #nosec G115 -- rule bounds are validated by happyhour.NewRule
	return pgquery.CreateHappyHourRuleParams{
		RoomID:       r.RoomID,
		Weekday:      int32(r.Weekday),
		StartMinutes: int32(r.StartMinutes),
		EndMinutes:   int32(r.EndMinutes),
	}
}

func RuleToDomain(row pgquery.HappyHourRule) happyhour.Rule {
	return happyhour.Rule{
		RoomID:       row.RoomID,
		Weekday:      int(row.Weekday),
		StartMinutes: int(row.StartMinutes),
		EndMinutes:   int(row.EndMinutes),
	}
}
