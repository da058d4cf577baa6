package fetch

import (
	"context"
	"fmt"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/parser"
	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads sector tables from local .xlsx files.
type WorkbookSource struct{}

// FetchTable reads the sector's workbook, restricted to its sheet and range.
func (WorkbookSource) FetchTable(ctx context.Context, sector models.Sector) (models.TableResponse, error) {
	if sector.Workbook == "" {
		return models.TableResponse{}, ErrNoSource
	}
	if err := ctx.Err(); err != nil {
		return models.TableResponse{}, err
	}

	table, err := ReadWorkbook(sector.Workbook, sector.Sheet, sector.Range)
	if err != nil {
		return models.TableResponse{}, err
	}

	count := len(table.Rows)
	return models.TableResponse{
		Headers:  table.Headers,
		Rows:     table.Rows,
		RowCount: &count,
	}, nil
}

// ReadWorkbook opens path and reads one table. A sheet named in rangeRef
// takes precedence over sheet.
func ReadWorkbook(path, sheet, rangeRef string) (models.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var area *models.Area
	if rangeRef != "" {
		refSheet, areas := parser.ParseRangeReference(rangeRef)
		if len(areas) == 0 {
			return models.RawTable{}, fmt.Errorf("invalid range %q", rangeRef)
		}
		if refSheet != "" {
			sheet = refSheet
		}
		area = &areas[0]
	}

	return parser.ReadTable(f, sheet, area)
}
