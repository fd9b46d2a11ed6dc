// Package export flattens post aggregates into tabular form: CSV files for
// attachment and an aligned text table for terminal preview. The per-emoji
// breakdown is deliberately omitted from rows.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/blackmichael/photo-challenge-bot/internal/domain"
)

// ErrNoData signals that there is nothing to export; callers skip writing a
// file entirely instead of producing an empty one.
var ErrNoData = errors.New("no data to export")

// header is the fixed CSV column set.
var header = []string{"post_link", "image_links", "posted_at", "author", "reactions"}

// Rows flattens aggregates into CSV rows, one per post, in input order.
func Rows(aggs []domain.PostAggregate) [][]string {
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, []string{
			a.PostLink,
			strings.Join(a.ImageLinks, ", "),
			a.PostedAt.Format(time.RFC3339),
			a.AuthorName,
			strconv.Itoa(a.Reactions),
		})
	}
	return rows
}

// WriteCSV writes the header and one row per aggregate to w. It returns
// ErrNoData without writing anything when there are no aggregates.
func WriteCSV(w io.Writer, aggs []domain.PostAggregate) error {
	if len(aggs) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range Rows(aggs) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV export into dir under a filename derived from
// threadName and returns the full path. It returns ErrNoData when there is
// nothing to export; no file is created in that case.
func WriteFile(dir, threadName string, aggs []domain.PostAggregate) (string, error) {
	if len(aggs) == 0 {
		return "", ErrNoData
	}

	path := filepath.Join(dir, FileName(threadName))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, aggs); err != nil {
		return "", err
	}
	return path, nil
}
