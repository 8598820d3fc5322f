// Package export renders added-vehicle records as CSV or Excel files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeJSON = "application/json"

	dateTimeLayout = "2006-01-02 15:04:05"
)

// column is one exported field.
type column struct {
	Label string
	Width float64
	Value func(r *entity.AddedVehicleRecord) any
}

var columns = []column{
	{Label: "Request ID", Width: 38, Value: func(r *entity.AddedVehicleRecord) any { return r.ID.String() }},
	{Label: "Registration", Width: 16, Value: func(r *entity.AddedVehicleRecord) any { return vehicleField(r, func(v *entity.VehicleSummary) string { return v.RegistrationNumber }) }},
	{Label: "Make", Width: 14, Value: func(r *entity.AddedVehicleRecord) any { return vehicleField(r, func(v *entity.VehicleSummary) string { return v.Make }) }},
	{Label: "Model", Width: 14, Value: func(r *entity.AddedVehicleRecord) any { return vehicleField(r, func(v *entity.VehicleSummary) string { return v.Model }) }},
	{Label: "Purpose", Width: 22, Value: func(r *entity.AddedVehicleRecord) any { return string(r.Purpose) }},
	{Label: "Status", Width: 12, Value: func(r *entity.AddedVehicleRecord) any { return string(r.Status) }},
	{Label: "Priority", Width: 10, Value: func(r *entity.AddedVehicleRecord) any { return string(r.Priority) }},
	{Label: "Scheduled Date", Width: 20, Value: func(r *entity.AddedVehicleRecord) any { return formatTime(r.ScheduledDate) }},
	{Label: "Owner NIC", Width: 16, Value: func(r *entity.AddedVehicleRecord) any { return r.OwnerNIC }},
	{Label: "Added By", Width: 20, Value: func(r *entity.AddedVehicleRecord) any { return addedByName(r) }},
	{Label: "Estimated Cost", Width: 14, Value: func(r *entity.AddedVehicleRecord) any { return r.ServiceDetails.EstimatedCost }},
	{Label: "Notes", Width: 40, Value: func(r *entity.AddedVehicleRecord) any { return r.Notes }},
	{Label: "Created At", Width: 20, Value: func(r *entity.AddedVehicleRecord) any { return formatTime(&r.CreatedAt) }},
	{Label: "Completed At", Width: 20, Value: func(r *entity.AddedVehicleRecord) any { return formatTime(r.Tracking.CompletedAt) }},
}

type writer struct{}

// NewExportWriter creates the CSV and Excel export writer.
func NewExportWriter() service.ExportWriter {
	return writer{}
}

func (writer) ContentType(format service.ExportFormat) string {
	switch format {
	case service.ExportCSV:
		return contentTypeCSV
	case service.ExportXLSX:
		return contentTypeXLSX
	default:
		return contentTypeJSON
	}
}

func (writer) Write(w io.Writer, format service.ExportFormat, records []*entity.AddedVehicleRecord) error {
	switch format {
	case service.ExportCSV:
		return writeCSV(w, records)
	case service.ExportXLSX:
		return writeXLSX(w, records)
	default:
		return errors.Errorf("unsupported export format %q", format)
	}
}

func writeCSV(w io.Writer, records []*entity.AddedVehicleRecord) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	row := make([]string, len(columns))
	for _, r := range records {
		for i, col := range columns {
			row[i] = toString(col.Value(r))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "flush csv")
}

func vehicleField(r *entity.AddedVehicleRecord, get func(*entity.VehicleSummary) string) string {
	if r.Vehicle == nil {
		return ""
	}

	return get(r.Vehicle)
}

func addedByName(r *entity.AddedVehicleRecord) string {
	if r.AddedByUser == nil {
		return r.AddedBy.String()
	}

	return r.AddedByUser.Name
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(dateTimeLayout)
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	default:
		return ""
	}
}
