package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"leadcrm/models"
)

var csvHeader = []string{"Name", "Email", "Phone", "Company", "Source", "Status", "Created At"}

// BuildLeadsCSV renders leads as a CSV document with a fixed header row.
// Timestamps are formatted as dates only.
func BuildLeadsCSV(leads []models.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %v", err)
	}

	for _, lead := range leads {
		record := []string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Company,
			lead.Source,
			lead.Status,
			lead.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %v", err)
	}

	return buf.Bytes(), nil
}
