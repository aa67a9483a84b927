// Package export renders a weekly schedule as a spreadsheet, a calendar
// feed or a printable PDF.
package export

import (
	"errors"
	"strings"
)

// Format identifies an export encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatICS  Format = "ics"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case FormatXLSX, FormatICS, FormatPDF:
		return f, nil
	}
	return "", ErrUnknownFormat
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatICS:
		return "text/calendar; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Filename returns the download name for f.
func (f Format) Filename() string {
	return "workout-plan." + string(f)
}

const headerDone = "Done"

var headers = []string{"Day", "Exercise", "Category", "Sets", "Reps", "Minutes", headerDone}

func doneMark(completed bool) string {
	if completed {
		return "yes"
	}
	return "no"
}
