package services

import (
	"strconv"

	"github.com/labassistantpro/labassistant/internal/models"
)

// Column orders for the two tabular exports. The header row always
// matches the row builders below.
var ReagentCSVHeaders = []string{
	"Name",
	"Quantity",
	"Unit",
	"Location",
	"Supplier",
	"Catalog Number",
	"Date Added",
	"Expiry Date",
	"Notes",
}

var DataPointCSVHeaders = []string{
	"Sample",
	"Value1",
	"Value2",
}

type ExportReagentReader interface {
	ListByUser(userID uint) ([]models.Reagent, error)
}

type ExportDataPointReader interface {
	ListByUser(userID uint) ([]models.DataPoint, error)
}

type ExportService struct {
	reagents ExportReagentReader
	points   ExportDataPointReader
}

func NewExportService(reagents ExportReagentReader, points ExportDataPointReader) *ExportService {
	return &ExportService{reagents: reagents, points: points}
}

func (service *ExportService) ReagentRows(userID uint) ([][]string, error) {
	reagents, err := service.reagents.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(reagents))
	for _, reagent := range reagents {
		rows = append(rows, []string{
			reagent.Name,
			formatFloat(reagent.Quantity),
			reagent.Unit,
			reagent.Location,
			reagent.Supplier,
			reagent.CatalogNumber,
			reagent.DateAdded,
			reagent.ExpiryDate,
			reagent.Notes,
		})
	}
	return rows, nil
}

func (service *ExportService) DataPointRows(userID uint) ([][]string, error) {
	points, err := service.points.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(points))
	for _, point := range points {
		rows = append(rows, []string{
			point.Sample,
			formatFloat(point.Value1),
			formatFloat(point.Value2),
		})
	}
	return rows, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
