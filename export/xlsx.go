// Package export writes simulation results to an xlsx workbook for lab
// reports: a summary sheet plus per-stage, theoretical-curve, and
// reference-table sheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lixenwraith/polarsim/malus"
)

// Results bundles one full recomputation for export.
type Results struct {
	Incident     float64
	Angles       []float64 // relative angle per pair, degrees
	Stages       []float64 // per-stage intensities, len(Angles)+1
	Curve        []malus.Sample
	Table        []malus.Sample
	Target       float64
	InverseAngle float64 // valid only when InverseOK
	InverseOK    bool
}

// WriteXLSX writes the workbook to filename.
func WriteXLSX(filename string, res Results) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Quantity")
	f.SetCellValue(summary, "B1", "Value")

	row := 2
	writeSummary := func(name string, value any) {
		f.SetCellValue(summary, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(summary, fmt.Sprintf("B%d", row), value)
		row++
	}

	writeSummary("Incident intensity (W/m²)", res.Incident)
	writeSummary("Polarizers", len(res.Stages))
	if len(res.Stages) > 0 {
		final := res.Stages[len(res.Stages)-1]
		writeSummary("Final intensity (W/m²)", final)
		if res.Incident > 0 {
			writeSummary("Overall transmission", final/res.Incident)
		}
	}
	writeSummary("Inverse target (W/m²)", res.Target)
	if res.InverseOK {
		writeSummary("Inverse angle (°)", res.InverseAngle)
	} else {
		writeSummary("Inverse angle (°)", "no solution")
	}

	if err := writeStages(f, res); err != nil {
		return err
	}
	if err := writeSamples(f, "Curve", res.Curve, res.Incident); err != nil {
		return err
	}
	if err := writeSamples(f, "Reference", res.Table, res.Incident); err != nil {
		return err
	}

	return f.SaveAs(filename)
}

func writeStages(f *excelize.File, res Results) error {
	sheet := "Stages"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Stage", "Relative angle (°)", "Intensity (W/m²)", "Of incident"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, intensity := range res.Stages {
		rowIdx := i + 2

		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		f.SetCellValue(sheet, cell, i+1)

		cell, _ = excelize.CoordinatesToCellName(2, rowIdx)
		if i == 0 {
			f.SetCellValue(sheet, cell, "-")
		} else {
			f.SetCellValue(sheet, cell, res.Angles[i-1])
		}

		cell, _ = excelize.CoordinatesToCellName(3, rowIdx)
		f.SetCellValue(sheet, cell, intensity)

		cell, _ = excelize.CoordinatesToCellName(4, rowIdx)
		if res.Incident > 0 {
			f.SetCellValue(sheet, cell, intensity/res.Incident)
		} else {
			f.SetCellValue(sheet, cell, 0)
		}
	}
	return nil
}

func writeSamples(f *excelize.File, sheet string, samples []malus.Sample, incident float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Angle (°)", "Intensity (W/m²)", "Transmission (%)"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range samples {
		rowIdx := i + 2

		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		f.SetCellValue(sheet, cell, s.Angle)

		cell, _ = excelize.CoordinatesToCellName(2, rowIdx)
		f.SetCellValue(sheet, cell, s.Intensity)

		cell, _ = excelize.CoordinatesToCellName(3, rowIdx)
		if incident > 0 {
			f.SetCellValue(sheet, cell, s.Intensity/incident*100)
		} else {
			f.SetCellValue(sheet, cell, 0)
		}
	}
	return nil
}
