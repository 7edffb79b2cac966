package dataset

// StaticProvider serves fixed in-memory datasets. Used by tests and by the
// seed tool to validate loaded data before the server takes traffic.
type StaticProvider struct {
	datasets map[ID][]Record
}

var _ Provider = &StaticProvider{}

func NewStaticProvider(datasets map[ID][]Record) *StaticProvider {
	if datasets == nil {
		datasets = make(map[ID][]Record)
	}
	return &StaticProvider{datasets: datasets}
}

func (p *StaticProvider) GetRecords(id ID) ([]Record, error) {
	records, ok := p.datasets[id]
	if !ok {
		return []Record{}, nil
	}
	return records, nil
}
