package services

import (
	"testing"

	"github.com/labassistantpro/labassistant/internal/models"
)

type fakeReagentReader struct {
	reagents []models.Reagent
}

func (reader fakeReagentReader) ListByUser(userID uint) ([]models.Reagent, error) {
	return reader.reagents, nil
}

type fakeDataPointReader struct {
	points []models.DataPoint
}

func (reader fakeDataPointReader) ListByUser(userID uint) ([]models.DataPoint, error) {
	return reader.points, nil
}

func TestReagentRowsMatchHeaderOrder(t *testing.T) {
	service := NewExportService(fakeReagentReader{reagents: []models.Reagent{
		{
			Name:          "Tris base",
			Quantity:      500,
			Unit:          "g",
			Location:      "Shelf A",
			Supplier:      "Sigma",
			CatalogNumber: "T1503",
			DateAdded:     "2024-01-10",
			ExpiryDate:    "2026-01-10",
			Notes:         "keep dry",
		},
	}}, fakeDataPointReader{})

	rows, err := service.ReagentRows(1)
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if len(rows[0]) != len(ReagentCSVHeaders) {
		t.Fatalf("row width %d does not match header width %d", len(rows[0]), len(ReagentCSVHeaders))
	}
	if rows[0][0] != "Tris base" || rows[0][1] != "500" || rows[0][2] != "g" {
		t.Fatalf("unexpected leading columns: %v", rows[0][:3])
	}
	if rows[0][7] != "2026-01-10" {
		t.Fatalf("expected expiry date column, got %q", rows[0][7])
	}
}

func TestDataPointRows(t *testing.T) {
	service := NewExportService(fakeReagentReader{}, fakeDataPointReader{points: []models.DataPoint{
		{Sample: "S1", Value1: 1.5, Value2: 2},
		{Sample: "S2", Value1: 0.25, Value2: 4},
	}})

	rows, err := service.DataPointRows(1)
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "S1" || rows[0][1] != "1.5" || rows[0][2] != "2" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][1] != "0.25" {
		t.Fatalf("expected 0.25, got %q", rows[1][1])
	}
}
