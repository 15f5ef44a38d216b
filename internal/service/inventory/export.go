package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// exportHeader is the canonical column order for both export formats.
var exportHeader = []string{
	"Utilisateur", "Salle", "Matériel", "Total", "Cassés", "Bons", "État", "Localisation", "Date",
}

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportCSV streams every entry as CSV in export column order, newest first.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.entries.ExportRows(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.User,
			row.Room,
			row.Material,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Broken),
			strconv.Itoa(row.Good),
			row.Condition,
			row.Location,
			row.RecordedAt.Format(exportTimeLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "csv export written", slog.Int("rows", len(rows)))
	return nil
}

// ExportXLSX writes every entry as an XLSX workbook with a single sheet,
// same columns and order as the CSV export.
func (s *Service) ExportXLSX(ctx context.Context, w io.Writer) error {
	rows, err := s.entries.ExportRows(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventaire"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.User,
			row.Room,
			row.Material,
			row.Total,
			row.Broken,
			row.Good,
			row.Condition,
			row.Location,
			row.RecordedAt.Format(exportTimeLayout),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "xlsx export written", slog.Int("rows", len(rows)))
	return nil
}
