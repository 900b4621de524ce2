package queries

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// CalendarWriter renders an owner calendar view into a spreadsheet.
type CalendarWriter interface {
	ContentType() string
	Write(w io.Writer, view *CalendarView) error
}

type ExportQueries interface {
	ContentType() string
	ExportCalendar(ctx context.Context, studioID uuid.UUID, from, to time.Time, viewer uuid.UUID, w io.Writer) error
}

type exportQueriesImpl struct {
	calendar CalendarQueries
	store    CalendarReadStore
	writer   CalendarWriter
}

func NewExportQueries(calendar CalendarQueries, store CalendarReadStore, writer CalendarWriter) ExportQueries {
	return &exportQueriesImpl{calendar: calendar, store: store, writer: writer}
}

func (q *exportQueriesImpl) ContentType() string {
	return q.writer.ContentType()
}

func (q *exportQueriesImpl) ExportCalendar(ctx context.Context, studioID uuid.UUID, from, to time.Time, viewer uuid.UUID, w io.Writer) error {
	st, err := q.store.StudioByID(ctx, studioID)
	if err != nil {
		return err
	}
	if !st.IsOwner(viewer) {
		return ErrNotStudioOwner
	}
	view, err := q.calendar.ListCalendarEntries(ctx, studioID, nil, from, to, &viewer)
	if err != nil {
		return err
	}
	return q.writer.Write(w, view)
}
