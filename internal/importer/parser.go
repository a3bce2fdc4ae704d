// Package importer ingests legacy spreadsheet exports. The old sheets were
// edited by hand, so the layout is loose: a preamble of arbitrary rows, a
// header row naming the columns, then product rows until the end. Payment
// rows are only recognizable by their label.
package importer

import (
	"strconv"
	"strings"

	"github.com/ampinho/churrasplit/internal/ledger"
)

// Expected column layout after the header row:
//
//	Nome | Valor | Comprador | Consumidores
//
// Consumidores is a comma-separated name list. Valor keeps whatever
// formatting the sheet had ("R$ 1.234,56"); the ledger normalizer deals
// with it.
const (
	colLabel = iota
	colAmount
	colPayer
	colConsumers
)

// findHeader locates the header row by the presence of "nome" and "valor"
// cells, matching loosely because sheets disagree on exact wording.
func findHeader(rows [][]string) int {
	for i, row := range rows {
		var hasName, hasValue bool
		for _, cell := range row {
			lower := strings.ToLower(cell)
			if strings.Contains(lower, "nome") {
				hasName = true
			}
			if strings.Contains(lower, "valor") {
				hasValue = true
			}
		}
		if hasName && hasValue {
			return i
		}
	}
	return -1
}

// ParseRows turns raw sheet rows into the records the ledger normalizer
// consumes. Rows before the header and blank rows are skipped; a missing
// header means there is nothing to import. Row numbers become record IDs,
// matching how the old sheets addressed entries.
func ParseRows(rows [][]string) []ledger.RawRecord {
	header := findHeader(rows)
	if header == -1 {
		return nil
	}

	var records []ledger.RawRecord
	for i := header + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(cell(row, colLabel)) == "" {
			continue
		}

		rec := ledger.RawRecord{
			ID:     strconv.Itoa(i + 1),
			Label:  strings.TrimSpace(cell(row, colLabel)),
			Amount: cell(row, colAmount),
			Payer:  strings.TrimSpace(cell(row, colPayer)),
		}
		if consumers := cell(row, colConsumers); consumers != "" {
			rec.Consumers = strings.Split(consumers, ",")
		}
		records = append(records, rec)
	}
	return records
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
