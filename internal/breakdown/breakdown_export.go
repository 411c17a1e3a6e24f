package breakdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Desglose"

// ExportMeta heads the exported sheet.
type ExportMeta struct {
	Title  string
	Code   string
	Status string
}

var exportHeaders = []string{"Partida", "Concepto", "Detalle", "Presupuestado", "Líquido pagable"}

// ExportXLSX renders groups as a single-sheet workbook. It only reads the
// unified breakdown shape, so form-side and response-side breakdowns export
// the same way.
func ExportXLSX(meta ExportMeta, groups []PartidaGroup) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(meta.Code)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{32, 32, 28, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	styles, err := newExportStyles(f)
	if err != nil {
		return nil, err
	}

	title := meta.Title
	if title == "" {
		title = "Desglose presupuestario"
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeCell(title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title)

	subtitle := strings.Join(nonEmpty(meta.Code, meta.Status), " · ")
	if subtitle != "" {
		f.SetCellValue(sheet, "A2", sanitizeCell(subtitle))
	}

	for i, h := range exportHeaders {
		f.SetCellValue(sheet, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A4", lastCol+"4", styles.header)

	row := 5
	for _, g := range groups {
		r := fmt.Sprintf("%d", row)
		label := g.PartidaName
		if g.ActivityDescription != nil {
			label = fmt.Sprintf("%s (%s)", label, *g.ActivityDescription)
		}
		f.SetCellValue(sheet, "A"+r, sanitizeCell(label))
		f.SetCellStyle(sheet, "A"+r, lastCol+r, styles.group)
		row++

		for _, it := range g.Items {
			r = fmt.Sprintf("%d", row)
			f.SetCellValue(sheet, "B"+r, sanitizeCell(it.Name))
			f.SetCellValue(sheet, "C"+r, sanitizeCell(itemDetail(it)))
			f.SetCellValue(sheet, "D"+r, amount(it.NetAmount))
			f.SetCellValue(sheet, "E"+r, amount(it.LiquidAmount))
			f.SetCellStyle(sheet, "A"+r, "C"+r, styles.item)
			f.SetCellStyle(sheet, "D"+r, lastCol+r, styles.money)
			row++
		}

		r = fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "C"+r, "Subtotal")
		f.SetCellValue(sheet, "D"+r, amount(g.TotalPresupuestado))
		f.SetCellValue(sheet, "E"+r, amount(g.TotalLiquido))
		f.SetCellStyle(sheet, "C"+r, lastCol+r, styles.total)
		row++
	}

	row++
	totals := Summarize(groups)
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "C"+r, "Total")
	f.SetCellValue(sheet, "D"+r, amount(totals.TotalPresupuestado))
	f.SetCellValue(sheet, "E"+r, amount(totals.TotalLiquido))
	f.SetCellStyle(sheet, "C"+r, lastCol+r, styles.total)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type exportStyles struct {
	title, header, group, item, money, total int
}

func newExportStyles(f *excelize.File) (exportStyles, error) {
	var s exportStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	if s.group, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E7E6E6"}, Pattern: 1},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create group style: %w", err)
	}

	if s.item, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create item style: %w", err)
	}

	// 4 is the built-in "#,##0.00" format.
	if s.money, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		NumFmt: 4,
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create money style: %w", err)
	}

	if s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		NumFmt: 4,
	}); err != nil {
		return s, fmt.Errorf("create total style: %w", err)
	}

	return s, nil
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func itemDetail(it BreakdownItem) string {
	parts := make([]string, 0, 2)
	if it.Destination != nil {
		parts = append(parts, string(*it.Destination))
	}
	if it.Detail != nil {
		parts = append(parts, *it.Detail)
	}
	return strings.Join(parts, " · ")
}

// sheetName strips the characters Excel rejects and keeps the 31 char limit.
func sheetName(code string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(code))
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		return defaultSheetName
	}
	return name
}

// sanitizeCell prefixes values Excel would evaluate as formulas.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
