package services

import (
	"context"
	"fmt"

	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// AttendeeWorkbook builds an Excel workbook listing an event's attendees,
// one row per attendee.
func (s *ExportService) AttendeeWorkbook(ctx context.Context, event *models.Event) (*excelize.File, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Export] Exporting attendee list for event %s", event.ID)

	f := excelize.NewFile()
	sheet := "Attendees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Email", "RSVP Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, attendee := range event.Attendees {
		values := []interface{}{attendee.Name, attendee.Email, attendee.RSVPStatus}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// AttendeeExportFilename is the suggested download name for an event's
// attendee list.
func AttendeeExportFilename(event *models.Event) string {
	return fmt.Sprintf("attendees-%s.xlsx", event.ID)
}
