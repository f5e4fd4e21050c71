package store

import (
	"context"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/notequiz/ent"
	"github.com/abhisek/notequiz/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, e := range rows {
		events[i] = entEventToLLMEvent(e)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	ev := entEventToLLMEvent(e)
	return &ev, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, llmrequestevent.FieldPurpose)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, llmrequestevent.FieldModel)
}

// usageRow receives one group of the usage aggregate. Only the column
// matching the group key is filled.
type usageRow struct {
	Purpose      string  `sql:"purpose"`
	Model        string  `sql:"model"`
	Calls        int     `sql:"calls"`
	InputTokens  int     `sql:"input_tokens"`
	OutputTokens int     `sql:"output_tokens"`
	AvgLatency   float64 `sql:"avg_latency"`
}

// usage aggregates calls, tokens and mean latency grouped by key, ordered
// by key.
func (r *eventRepo) usage(ctx context.Context, key string) ([]LLMUsage, error) {
	var rows []usageRow
	err := r.client.LLMRequestEvent.Query().
		GroupBy(key).
		Aggregate(
			aggregateAs(func(s *entsql.Selector) string { return entsql.Count("*") }, "calls"),
			aggregateAs(func(s *entsql.Selector) string { return entsql.Sum(s.C(llmrequestevent.FieldInputTokens)) }, "input_tokens"),
			aggregateAs(func(s *entsql.Selector) string { return entsql.Sum(s.C(llmrequestevent.FieldOutputTokens)) }, "output_tokens"),
			aggregateAs(func(s *entsql.Selector) string { return entsql.Avg(s.C(llmrequestevent.FieldLatencyMs)) }, "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", key, err)
	}

	out := make([]LLMUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMUsage{
			Purpose:      row.Purpose,
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if key == llmrequestevent.FieldPurpose {
			return out[i].Purpose < out[j].Purpose
		}
		return out[i].Model < out[j].Model
	})
	return out, nil
}

// aggregateAs names the column an aggregate expression produces.
func aggregateAs(expr func(*entsql.Selector) string, alias string) ent.AggregateFunc {
	return func(s *entsql.Selector) string {
		return entsql.As(expr(s), alias)
	}
}

func entEventToLLMEvent(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
