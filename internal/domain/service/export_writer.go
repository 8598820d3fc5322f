package service

import (
	"io"

	"autoconnect/internal/domain/entity"
)

// ExportFormat is a supported export encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// IsValid checks if the ExportFormat is supported.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportJSON, ExportCSV, ExportXLSX:
		return true
	}

	return false
}

// IsFile reports whether the format is delivered as a file download rather than
// in the JSON response envelope.
func (f ExportFormat) IsFile() bool {
	return f == ExportCSV || f == ExportXLSX
}

// ExportWriter renders export rows in one of the file formats.
type ExportWriter interface {
	// ContentType returns the MIME type of format.
	ContentType(format ExportFormat) string

	// Write encodes records to w. Formats other than the file formats are rejected.
	Write(w io.Writer, format ExportFormat, records []*entity.AddedVehicleRecord) error
}
