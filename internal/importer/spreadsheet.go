package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads cards from the first sheet of an .xlsx workbook.
// Column A is the question, B the answer and C an optional difficulty.
// A first row whose A cell reads "question" is treated as a header.
func ParseSpreadsheet(r io.Reader) ([]Card, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	var cards []Card
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "question") {
			continue
		}

		card := Card{
			Question:   cell(row, 0),
			Answer:     cell(row, 1),
			Difficulty: normalizeDifficulty(cell(row, 2)),
		}
		if card.Question == "" || card.Answer == "" {
			continue
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeDifficulty(v string) string {
	switch strings.ToLower(v) {
	case "easy", "medium", "hard":
		return strings.ToLower(v)
	default:
		return ""
	}
}
