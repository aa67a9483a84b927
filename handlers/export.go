package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/export"
)

// HandleExport downloads the current schedule as xlsx, ics or pdf.
func (d *Deps) HandleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		jsonError(w, "Unknown export format", http.StatusNotFound)
		return
	}

	schedule := d.Planner.Schedule()

	var body []byte
	switch format {
	case export.FormatXLSX:
		body, err = export.XLSX(schedule)
	case export.FormatPDF:
		body, err = export.PDF(schedule)
	case export.FormatICS:
		now := d.now()
		body = []byte(export.ICS(schedule, export.CalendarOptions{
			WeekOf:    now,
			StartHour: d.ICSStartHour,
			Stamp:     now,
		}))
	}
	if err != nil {
		d.logger().Error("export failed", zap.String("format", string(format)), zap.Error(err))
		jsonError(w, "Export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.Write(body)
}
