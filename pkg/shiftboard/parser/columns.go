package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultAliases holds historical header names tried after the configured one.
var DefaultAliases = map[models.ColumnKey][]string{
	models.ColumnDate:               {"data", "dia"},
	models.ColumnPieces:             {"Peças Fabric.", "Peças Fabricadas", "Peças", "Produção"},
	models.ColumnRunning:            {"Funcionando", "Horas Funcionando", "Tempo Funcionando"},
	models.ColumnStopped:            {"Parado", "Horas Parado", "Tempo Parado"},
	models.ColumnUtilization:        {"utilização de Maquina", "Utilização", "Utilização Máquina"},
	models.ColumnTargetUtilization:  {"maximo", "meta", "Meta Utilização"},
	models.ColumnMaximumUtilization: {"maximo", "máximo"},
	models.ColumnMinimumUtilization: {"minimo", "mínimo", "Utilização Mínima"},
	models.ColumnTcMedio:            {"TC MEDIO", "TC Médio", "Tempo de Ciclo"},
	models.ColumnWorkingHours:       {"Horas Trabalhadas", "Jornada", "Turno"},
}

// NotFound is the index reported for an unresolvable column.
const NotFound = -1

// ResolveColumn finds the index of a logical column in headers.
// It tries the configured name and then each fallback, first by exact match
// and then by a match that ignores case, surrounding spaces and accents.
// It returns NotFound and false when no candidate matches.
func ResolveColumn(headers []string, configured string, fallbacks []string) (int, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	candidates := make([]string, 0, len(fallbacks)+1)
	if configured != "" {
		candidates = append(candidates, configured)
	}
	candidates = append(candidates, fallbacks...)

	for _, name := range candidates {
		if name == "" {
			continue
		}
		if i := indexOf(headers, name); i >= 0 {
			return i, true
		}
		if i := indexOf(normalized, NormalizeHeader(name)); i >= 0 {
			return i, true
		}
	}
	return NotFound, false
}

// ColumnIndex is the resolved position of every logical column of one table.
type ColumnIndex map[models.ColumnKey]int

// ResolveColumns resolves every tracked column of cols against headers once.
// Keys absent from cols are untracked and resolve to NotFound.
func ResolveColumns(headers []string, cols models.ColumnMap) ColumnIndex {
	idx := make(ColumnIndex, len(models.ColumnKeys))
	for _, key := range models.ColumnKeys {
		idx[key] = NotFound
		configured, ok := cols.Header(key)
		if !ok {
			continue
		}
		if i, found := ResolveColumn(headers, configured, DefaultAliases[key]); found {
			idx[key] = i
		}
	}
	return idx
}

// Has reports whether key resolved to a column.
func (c ColumnIndex) Has(key models.ColumnKey) bool {
	i, ok := c[key]
	return ok && i >= 0
}

// Cell returns the cell of row for key, or nil when the column is absent
// or the row is too short.
func (c ColumnIndex) Cell(row []models.Cell, key models.ColumnKey) models.Cell {
	i, ok := c[key]
	if !ok {
		return nil
	}
	return models.CellAt(row, i)
}

// NormalizeHeader trims, lowercases and strips diacritics from a header.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
