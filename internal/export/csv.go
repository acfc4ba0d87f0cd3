// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/slipcheck/platform/internal/model"
)

// utf8BOM prefixes the stream so spreadsheet applications detect the
// encoding. The byte order mark plus the fixed column set below are a
// compatibility contract with downstream consumers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var reportColumns = []string{
	"date",
	"site",
	"employee",
	"status",
	"temperature_c",
	"conditions",
	"snowfall_cm",
	"salt_used_kg",
	"plowed",
	"salted",
	"sanded",
	"notes",
}

// WriteReportsCSV streams company reports as CSV with a UTF-8 BOM prefix.
func WriteReportsCSV(w io.Writer, reports []*model.Report) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(reportColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, report := range reports {
		status := "submitted"
		if report.IsDraft {
			status = "draft"
		}

		conditions := report.Conditions
		if report.WeatherEstimated {
			conditions += " (estimated)"
		}

		row := []string{
			report.ReportDate.Format("2006-01-02"),
			report.Site.Name,
			report.Employee.User.Name,
			status,
			strconv.FormatFloat(report.TemperatureC, 'f', 1, 64),
			conditions,
			strconv.FormatFloat(report.SnowfallCm, 'f', 1, 64),
			strconv.FormatFloat(report.SaltUsedKg, 'f', 1, 64),
			strconv.FormatBool(report.Plowed),
			strconv.FormatBool(report.Salted),
			strconv.FormatBool(report.Sanded),
			report.Notes,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}
