package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/slipcheck/platform/internal/export"
	"github.com/slipcheck/platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportsCSV(t *testing.T) {
	reports := []*model.Report{
		{
			ReportDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			TemperatureC: -6.5,
			Conditions:   "snow",
			SnowfallCm:   12,
			SaltUsedKg:   40,
			Plowed:       true,
			Salted:       true,
			Notes:        "heavy overnight snowfall",
			Site:         model.Site{Name: "North Lot"},
			Employee:     model.Employee{User: model.User{Name: "Dana Frost"}},
		},
		{
			ReportDate:       time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			IsDraft:          true,
			TemperatureC:     -2,
			Conditions:       "unknown",
			WeatherEstimated: true,
			Site:             model.Site{Name: "South Walkway"},
			Employee:         model.Employee{User: model.User{Name: "Dana Frost"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteReportsCSV(&buf, reports))

	raw := buf.Bytes()
	require.True(t, len(raw) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3], "output must start with a UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"date", "site", "employee", "status", "temperature_c", "conditions",
		"snowfall_cm", "salt_used_kg", "plowed", "salted", "sanded", "notes",
	}, records[0])

	assert.Equal(t, "2026-01-15", records[1][0])
	assert.Equal(t, "North Lot", records[1][1])
	assert.Equal(t, "submitted", records[1][3])
	assert.Equal(t, "snow", records[1][5])
	assert.Equal(t, "true", records[1][8])

	assert.Equal(t, "draft", records[2][3])
	assert.Equal(t, "unknown (estimated)", records[2][5])
}

func TestWriteReportsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteReportsCSV(&buf, nil))

	raw := buf.Bytes()
	require.True(t, len(raw) > 3)

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}
