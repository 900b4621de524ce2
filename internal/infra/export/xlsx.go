// Package export renders calendar views as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"studio-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetBlocks     = "Blocks"
	sheetPending    = "Pending"
	sheetHappyHours = "HappyHours"
	timeLayout      = "2006-01-02 15:04"
)

var (
	blockColumns     = []string{"Room", "Start", "End", "Type", "Status", "Title", "Note"}
	pendingColumns   = []string{"Room", "Start", "End", "Hours", "Requester", "Phone", "Email", "Price", "Currency", "Note"}
	happyHourColumns = []string{"Room", "Start", "End"}
)

// XLSXWriter writes one sheet per entry kind, times in the studio time zone.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (w *XLSXWriter) ContentType() string {
	return ContentTypeXLSX
}

func (w *XLSXWriter) Write(out io.Writer, view *queries.CalendarView) error {
	loc, err := time.LoadLocation(view.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	names := make(map[uuid.UUID]string, len(view.Rooms))
	for _, r := range view.Rooms {
		names[r.ID] = r.Name
	}
	local := func(t time.Time) string { return t.In(loc).Format(timeLayout) }

	s := newSheetWriter()
	defer s.close()

	if err := s.addSheet(sheetBlocks, blockColumns); err != nil {
		return err
	}
	for _, b := range view.Blocks {
		if err := s.writeRow(names[b.RoomID], local(b.StartAt), local(b.EndAt), string(b.Type), string(b.Status), b.Title, b.Note); err != nil {
			return err
		}
	}

	if err := s.addSheet(sheetPending, pendingColumns); err != nil {
		return err
	}
	for _, p := range view.PendingRequests {
		var price any = ""
		if p.TotalPrice != nil {
			price = *p.TotalPrice
		}
		if err := s.writeRow(names[p.RoomID], local(p.StartAt), local(p.EndAt), p.Hours, p.RequesterName, p.RequesterPhone, p.RequesterEmail, price, p.Currency, p.Note); err != nil {
			return err
		}
	}

	if err := s.addSheet(sheetHappyHours, happyHourColumns); err != nil {
		return err
	}
	for _, h := range view.HappyHours {
		if err := s.writeRow(names[h.RoomID], local(h.StartAt), local(h.EndAt)); err != nil {
			return err
		}
	}

	return s.file.Write(out)
}

type sheetWriter struct {
	file    *excelize.File
	current string
	row     int
	bold    int
}

func newSheetWriter() *sheetWriter {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		bold = 0
	}
	return &sheetWriter{file: f, bold: bold}
}

func (s *sheetWriter) addSheet(name string, header []string) error {
	if s.current == "" {
		if err := s.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := s.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	s.current = name
	s.row = 1

	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := s.writeRow(values...); err != nil {
		return err
	}
	if s.bold != 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = s.file.SetCellStyle(name, first, last, s.bold)
	}
	return nil
}

func (s *sheetWriter) writeRow(values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetRow(s.current, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", s.row, s.current, err)
	}
	s.row++
	return nil
}

func (s *sheetWriter) close() {
	_ = s.file.Close()
}
