// Package spreadsheet exports an acoesbr.Table to an xlsx file.
package spreadsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/acoesbr"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// FileName is the name of the exported file.
	FileName = "top10_acoes_br.xlsx"
	// SheetName is the single sheet of the exported file.
	SheetName = "Acoes"
)

// ErrLocked is returned by Save when the previous file cannot be replaced,
// usually because a spreadsheet application has it open.
var ErrLocked = errors.New("the spreadsheet is open in another program and cannot be replaced")

// Header is the first row of the sheet.
var Header = []any{
	"CollectionDate", "Ticker", "Name", "Price", "DayChangePct", "MarketCap", "PE",
	"DividendYieldPct", "PriceToBook", "52wHigh", "52wLow", "Volume", "Sector", "Opportunity",
}

// remove is os.Remove, replaced in tests.
var remove = os.Remove

// isLocked reports whether a removal failed because another process holds
// the file open. Only Windows refuses to delete an open file; a permission
// error is a plain failure everywhere. Replaced in tests.
var isLocked = isSharingViolation

// DesktopDir returns the user's Desktop folder, or the home folder if there
// is no Desktop.
func DesktopDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	desktop := filepath.Join(home, "Desktop")
	if fi, err := os.Stat(desktop); err == nil && fi.IsDir() {
		return desktop, nil
	}
	return home, nil
}

// OutputPath returns the path of the exported file.
func OutputPath() (string, error) {
	dir, err := DesktopDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the desktop folder: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// Save writes t to a new spreadsheet at path, replacing any previous file.
//
// If the previous file cannot be removed because it is locked, Save returns
// an error wrapping ErrLocked and leaves it untouched.
func Save(path string, t acoesbr.Table) error {
	if err := remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if isLocked(err) {
			return fmt.Errorf("%w:\n%s\nClose it and run again", ErrLocked, path)
		}
		return fmt.Errorf("cannot remove previous spreadsheet %q: %w", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header := Header
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range t {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rowValues(r)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("cannot write row of %s: %w", r.Ticker, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save spreadsheet %q: %w", path, err)
	}
	log.Info().Str("path", path).Int("rows", len(t)).Msg("spreadsheet saved")
	return nil
}

// rowValues returns the cells of r in Header order, numbers unformatted.
func rowValues(r acoesbr.Row) []any {
	return []any{
		r.On.Display(),
		r.Ticker,
		r.Name,
		number(r.Price),
		number(r.ChangePct),
		number(r.MarketCap),
		number(r.PE),
		number(r.YieldPct),
		number(r.PB),
		number(r.High52),
		number(r.Low52),
		number(r.Volume),
		r.Sector,
		string(r.Opportunity),
	}
}

// number returns nil for null so that the cell stays empty.
func number(v decimal.NullDecimal) any {
	if !v.Valid {
		return nil
	}
	return v.Decimal.InexactFloat64()
}
