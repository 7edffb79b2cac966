package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/dataset"
	"edutrack-advisor-be/pkg/llm"
)

const contextInstruction = `You identify which datasets are relevant for a user query.
Available datasets:
- 'academic_data': student academic records, GPA, courses, warnings
- 'performance_data': performance metrics and evaluations
- 'welfare_data': well-being and health data
- 'career_data': career-related information
Return ONLY a comma-separated list of dataset names inside square brackets, e.g. [academic_data]`

const interpreterInstruction = `You are a data interpretation specialist. Your job is to:
1. Analyze the provided data records
2. Extract meaningful insights relevant to the user's query
3. Present the information in a clear, helpful format
4. Identify patterns, trends, or specific answers to the user's question
Always provide actionable insights based on the data.`

// gpaColumn is the numeric column the aggregate fallback summarizes.
const gpaColumn = "gpa"

// Engine retrieves facts from tabular records and turns them into a
// narrative. Absence of data is a legitimate outcome, not a failure: every
// error path degrades to a nil result.
type Engine struct {
	provider llm.LLMProvider
	datasets dataset.Provider
}

func NewEngine(provider llm.LLMProvider, datasets dataset.Provider) *Engine {
	return &Engine{provider: provider, datasets: datasets}
}

// Lookup returns a narrative grounded in matching records, or nil when
// nothing relevant was found. It never returns an error to the caller;
// failures are recorded on the flow trace and surface as a nil result.
func (e *Engine) Lookup(ctx context.Context, rec *flow.Recorder, query string) *string {
	ids := e.selectDatasets(ctx, rec, query)

	matched, err := e.scan(ids, query)
	if err != nil {
		rec.Record(flow.ActorDataContext, "Error occurred", fmt.Sprintf("Error: %v", err))
		return nil
	}

	if len(matched) == 0 {
		if summary := e.aggregateSummary(ids, query); summary != nil {
			matched = append(matched, summary)
		}
	}

	if len(matched) == 0 {
		rec.Record(flow.ActorDataContext, "No relevant data found", "No matching records in datasets")
		return nil
	}

	return e.interpret(ctx, rec, query, matched)
}

func (e *Engine) selectDatasets(ctx context.Context, rec *flow.Recorder, query string) []dataset.ID {
	rec.Record(flow.ActorDataContext, "Identifying relevant datasets", fmt.Sprintf("Query: %s", flow.Snippet(query, 50)))

	reply, err := llm.Complete(ctx, e.provider, contextInstruction, query, llm.WithTemperature(0.0))
	if err != nil {
		rec.Record(flow.ActorDataContext, "Dataset selection failed, using default", string(dataset.Academic))
		return []dataset.ID{dataset.Academic}
	}

	ids := parseDatasetList(reply)
	if len(ids) == 0 {
		rec.Record(flow.ActorDataContext, "Dataset selection failed, using default", string(dataset.Academic))
		return []dataset.ID{dataset.Academic}
	}

	rec.Record(flow.ActorDataContext, "Dataset selection completed", fmt.Sprintf("Selected: %v", ids))
	return ids
}

// scan collects records whose values contain any whitespace token of the
// query. Dataset iteration order, then row order.
func (e *Engine) scan(ids []dataset.ID, query string) ([]dataset.Record, error) {
	tokens := strings.Fields(strings.ToLower(query))

	var matched []dataset.Record
	for _, id := range ids {
		records, err := e.datasets.GetRecords(id)
		if err != nil {
			return nil, fmt.Errorf("get records %s: %w", id, err)
		}
		for _, record := range records {
			flat := record.Flatten()
			for _, token := range tokens {
				if strings.Contains(flat, token) {
					matched = append(matched, record)
					break
				}
			}
		}
	}
	return matched, nil
}

// aggregateSummary synthesizes one summary record from GPA statistics when
// no row matched but the query is an academic one.
func (e *Engine) aggregateSummary(ids []dataset.ID, query string) dataset.Record {
	if !strings.Contains(strings.ToLower(query), "academic") {
		return nil
	}

	for _, id := range ids {
		records, err := e.datasets.GetRecords(id)
		if err != nil || len(records) == 0 {
			continue
		}

		var sum float64
		var count, low, high int
		for _, record := range records {
			gpa, err := strconv.ParseFloat(record[gpaColumn], 64)
			if err != nil {
				continue
			}
			sum += gpa
			count++
			if gpa < 7.0 {
				low++
			}
			if gpa >= 9.0 {
				high++
			}
		}
		if count == 0 {
			continue
		}

		return dataset.Record{
			"summary": fmt.Sprintf(
				"Academic Overview - Average GPA: %.2f, Students with GPA < 7.0: %d, Students with GPA >= 9.0: %d",
				sum/float64(count), low, high),
		}
	}
	return nil
}

func (e *Engine) interpret(ctx context.Context, rec *flow.Recorder, query string, matched []dataset.Record) *string {
	rec.Record(flow.ActorInterpreter, "Interpreting data", fmt.Sprintf("Processing %d records", len(matched)))

	serialized, err := json.MarshalIndent(matched, "", "  ")
	if err != nil {
		rec.Record(flow.ActorInterpreter, "Error occurred", fmt.Sprintf("Error: %v", err))
		return nil
	}

	prompt := fmt.Sprintf(
		"User asked: '%s'\n\nRelevant data found:\n%s\n\nPlease provide insights and actionable advice based on this data.",
		query, serialized)

	narrative, err := llm.Complete(ctx, e.provider, interpreterInstruction, prompt)
	if err != nil {
		rec.Record(flow.ActorInterpreter, "Error occurred", fmt.Sprintf("Error: %v", err))
		return nil
	}

	rec.Record(flow.ActorInterpreter, "Data interpretation completed", "Generated insights and recommendations")
	return &narrative
}

func parseDatasetList(reply string) []dataset.ID {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var ids []dataset.ID
	seen := make(map[dataset.ID]bool)
	for _, token := range strings.Split(reply[start+1:end], ",") {
		token = strings.Trim(token, " \t\n'\"")
		id, ok := dataset.Parse(token)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

