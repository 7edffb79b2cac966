package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CSVProvider reads datasets from CSV files under a base directory.
// Parsed records are cached in-process so repeated lookups don't re-read
// the file on every query.
type CSVProvider struct {
	baseDir string
	cache   *gocache.Cache
}

var _ Provider = &CSVProvider{}

func NewCSVProvider(baseDir string) *CSVProvider {
	return &CSVProvider{
		baseDir: baseDir,
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (p *CSVProvider) GetRecords(id ID) ([]Record, error) {
	if cached, found := p.cache.Get(string(id)); found {
		return cached.([]Record), nil
	}

	records, err := p.load(id)
	if err != nil {
		return nil, err
	}

	p.cache.Set(string(id), records, gocache.DefaultExpiration)
	return records, nil
}

func (p *CSVProvider) load(id ID) ([]Record, error) {
	path := filepath.Join(p.baseDir, string(id)+".csv")

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing dataset is an empty sequence, not an error
			return []Record{}, nil
		}
		return nil, fmt.Errorf("open dataset %s: %w", id, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", id, err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}
