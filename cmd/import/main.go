// Command import loads fund metrics from a CSV export into the local
// metric store. The first row must be a header row containing a
// "Fund Name" column; every other column is written as one metric per
// fund. Cell values are stored raw; normalization happens at read time.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/config"
	"github.com/hkpamc/fund-advisor-backend/internal/database"
	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
)

func main() {
	filePath := flag.String("file", "", "path to the fund metrics CSV file")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: import -file <metrics.csv>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	store := metricstore.NewSQLiteStore(db)

	imported, err := importCSV(context.Background(), store, *filePath)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d metric values from %s", imported, *filePath)
}

// importCSV reads the file and upserts one metric row per (fund, column)
// cell. Returns the number of values written.
func importCSV(ctx context.Context, store *metricstore.SQLiteStore, filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("%w: need a header row and at least one fund", apperrors.ErrInvalidCSVHeaders)
	}

	headers := rows[0]
	nameColumn := -1
	for i, header := range headers {
		if strings.TrimSpace(header) == metricstore.KeyFundName {
			nameColumn = i
		}
	}
	if nameColumn < 0 {
		return 0, fmt.Errorf("%w: missing %q column", apperrors.ErrInvalidCSVHeaders, metricstore.KeyFundName)
	}

	imported := 0
	for _, row := range rows[1:] {
		if nameColumn >= len(row) {
			continue
		}
		fundName := strings.TrimSpace(row[nameColumn])
		if fundName == "" {
			continue
		}

		for i, header := range headers {
			if i >= len(row) {
				break
			}
			metricKey := strings.TrimSpace(header)
			if metricKey == "" {
				continue
			}

			// Blank cells are stored as null so read-side normalization
			// reports them as missing rather than zero.
			var value *string
			if cell := strings.TrimSpace(row[i]); cell != "" {
				value = &cell
			}

			if err := store.Upsert(ctx, uuid.New().String(), fundName, metricKey, value); err != nil {
				return imported, fmt.Errorf("failed to store %s/%s: %w", fundName, metricKey, err)
			}
			imported++
		}
	}

	return imported, nil
}
