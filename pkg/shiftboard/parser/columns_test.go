package parser

import (
	"testing"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Peças Fabric.", "pecas fabric."},
		{"  utilização de Maquina ", "utilizacao de maquina"},
		{"TC MÉDIO", "tc medio"},
		{"data", "data"},
		{"", ""},
	}

	for _, tt := range tests {
		result := NormalizeHeader(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeHeader(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestResolveColumn(t *testing.T) {
	headers := []string{"data", "Peças Fabric.", "Funcionando", "Parado", "Utilização de Máquina", "TC MEDIO"}

	tests := []struct {
		name       string
		configured string
		fallbacks  []string
		expected   int
		found      bool
	}{
		{"exact match", "Funcionando", nil, 2, true},
		{"case and accent insensitive", "pecas fabric.", nil, 1, true},
		{"surrounding spaces", "  Parado ", nil, 3, true},
		{"accent drift between tenants", "utilização de Maquina", nil, 4, true},
		{"fallback used when configured is renamed", "TC Médio (min)", []string{"tc medio"}, 5, true},
		{"fallbacks tried in order", "", []string{"missing", "DATA"}, 0, true},
		{"not found", "Horas Trabalhadas", []string{"Jornada"}, NotFound, false},
		{"empty configured and no fallbacks", "", nil, NotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := ResolveColumn(headers, tt.configured, tt.fallbacks)
			if idx != tt.expected || ok != tt.found {
				t.Errorf("ResolveColumn(%q) = (%d, %v), expected (%d, %v)",
					tt.configured, idx, ok, tt.expected, tt.found)
			}
		})
	}
}

func TestResolveColumnPrefersExactMatch(t *testing.T) {
	headers := []string{"Parado ", "Parado"}

	idx, ok := ResolveColumn(headers, "Parado", nil)
	if !ok || idx != 1 {
		t.Errorf("ResolveColumn = (%d, %v), expected exact match at 1", idx, ok)
	}
}

func TestResolveColumns(t *testing.T) {
	headers := []string{"Data", "Peças Fabric.", "Funcionando", "maximo"}
	cols := models.ColumnMap{
		models.ColumnDate:              "data",
		models.ColumnPieces:            "Peças Fabric.",
		models.ColumnRunning:           "Horas Rodando",
		models.ColumnTargetUtilization: "meta",
	}

	idx := ResolveColumns(headers, cols)

	expected := map[models.ColumnKey]int{
		models.ColumnDate:               0,
		models.ColumnPieces:             1,
		models.ColumnRunning:            2, // alias "Funcionando"
		models.ColumnTargetUtilization:  3, // alias "maximo"
		models.ColumnStopped:            NotFound,
		models.ColumnMaximumUtilization: NotFound, // untracked even though an alias exists
		models.ColumnWorkingHours:       NotFound,
	}
	for key, want := range expected {
		if idx[key] != want {
			t.Errorf("index[%s] = %d, expected %d", key, idx[key], want)
		}
	}
	if idx.Has(models.ColumnStopped) {
		t.Error("expected stopped column to be absent")
	}
}

func TestColumnIndexCell(t *testing.T) {
	idx := ColumnIndex{models.ColumnDate: 0, models.ColumnPieces: 3, models.ColumnStopped: NotFound}
	row := []models.Cell{"01/02/2025", "x"}

	if got := idx.Cell(row, models.ColumnDate); got != "01/02/2025" {
		t.Errorf("Cell(date) = %v, expected 01/02/2025", got)
	}
	if got := idx.Cell(row, models.ColumnPieces); got != nil {
		t.Errorf("Cell(pieces) = %v, expected nil for short row", got)
	}
	if got := idx.Cell(row, models.ColumnStopped); got != nil {
		t.Errorf("Cell(stopped) = %v, expected nil for absent column", got)
	}
	if got := idx.Cell(row, models.ColumnTcMedio); got != nil {
		t.Errorf("Cell(tcMedio) = %v, expected nil for unresolved key", got)
	}
}
