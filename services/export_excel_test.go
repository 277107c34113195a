package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestGenerateItemsExcel_Basic(t *testing.T) {
	data := ItemsExportData{
		JobNumber: "1001",
		JobName:   "Quarterly Maintenance",
		Date:      "15 Jun 2025",
		Items: []InvoiceLineItem{
			{SINo: 1, Name: "Filter", ServiceLine: "HVAC", Type: "part", Quantity: 2, UnitCost: 20, Amount: 40},
			{SINo: 2, Name: "Labor", ServiceLine: "HVAC", Type: "labor", Quantity: 1, UnitCost: 150, Amount: 150},
		},
		Total: 190,
	}

	result, err := GenerateItemsExcel(data)
	if err != nil {
		t.Fatalf("GenerateItemsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateItemsExcel() returned empty bytes")
	}

	f := openWorkbook(t, result)

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Job 1001" {
		t.Errorf("sheets = %v, want [Job 1001]", sheets)
	}

	title, _ := f.GetCellValue("Job 1001", "A1")
	if title != "Job #1001 - Quarterly Maintenance" {
		t.Errorf("title = %q", title)
	}

	// First data row starts at row 6.
	name, _ := f.GetCellValue("Job 1001", "B6")
	if name != "Filter" {
		t.Errorf("B6 = %q, want Filter", name)
	}
	amount, _ := f.GetCellValue("Job 1001", "F6")
	if amount != "$40.00" {
		t.Errorf("F6 = %q, want $40.00", amount)
	}

	// Summary row: data rows 6-7, blank row 8, total row 9.
	total, _ := f.GetCellValue("Job 1001", "F9")
	if total != "$190.00" {
		t.Errorf("total cell = %q, want $190.00", total)
	}
}

func TestGenerateItemsExcel_Empty(t *testing.T) {
	result, err := GenerateItemsExcel(ItemsExportData{JobNumber: "2002", JobName: "No Items"})
	if err != nil {
		t.Fatalf("GenerateItemsExcel() error = %v", err)
	}

	f := openWorkbook(t, result)

	// No data rows, so the total lands right after the blank row 6.
	total, _ := f.GetCellValue("Job 2002", "F7")
	if total != "$0.00" {
		t.Errorf("total cell = %q, want $0.00", total)
	}
}

func TestGenerateItemsExcel_LongJobNumberTruncatesSheetName(t *testing.T) {
	data := ItemsExportData{
		JobNumber: "12345678901234567890123456789012345",
		JobName:   "Long",
	}

	result, err := GenerateItemsExcel(data)
	if err != nil {
		t.Fatalf("GenerateItemsExcel() error = %v", err)
	}

	f := openWorkbook(t, result)

	sheets := f.GetSheetList()
	if len(sheets) != 1 || len(sheets[0]) != 31 {
		t.Errorf("sheet name = %q, want 31 chars", sheets[0])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain", "Filter", "Filter"},
		{"empty", "", ""},
		{"formula equals", "=SUM(A1)", "'=SUM(A1)"},
		{"formula plus", "+1", "'+1"},
		{"formula minus", "-1", "'-1"},
		{"formula at", "@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
