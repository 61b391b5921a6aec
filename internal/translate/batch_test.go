package translate

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func makeItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i, Text: "text"}
	}
	return items
}

func upperBatch(calls *int32) batchFunc {
	return func(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
		atomic.AddInt32(calls, 1)
		results := make([]TranslationResult, len(items))
		for i, item := range items {
			results[len(items)-1-i] = TranslationResult{
				Index: item.Index,
				Text:  strings.ToUpper(item.Text),
			}
		}
		return results, nil
	}
}

func TestSplitBatches(t *testing.T) {
	batches := splitBatches(makeItems(7), 3)
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[2]) != 1 || batches[2][0].Index != 6 {
		t.Errorf("unexpected last batch %+v", batches[2])
	}
	if got := splitBatches(nil, 3); len(got) != 0 {
		t.Errorf("expected no batches, got %d", len(got))
	}
}

func TestTranslateSequential(t *testing.T) {
	var calls int32
	results, err := translateSequential(context.Background(), makeItems(10), 4, upperBatch(&calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 batch calls, got %d", calls)
	}
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i || r.Text != "TEXT" {
			t.Errorf("result %d = %+v", i, r)
		}
	}
}

func TestTranslateSequentialEmpty(t *testing.T) {
	var calls int32
	results, err := translateSequential(context.Background(), nil, 4, upperBatch(&calls))
	if err != nil || len(results) != 0 || calls != 0 {
		t.Errorf("expected no work, got %d results, %d calls, err %v", len(results), calls, err)
	}
}

func TestTranslateConcurrentKeepsOrder(t *testing.T) {
	var calls int32
	results, err := translateConcurrent(context.Background(), makeItems(23), 5, 3, upperBatch(&calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 batch calls, got %d", calls)
	}
	if len(results) != 23 {
		t.Fatalf("expected 23 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
	}
}

func TestTranslateConcurrentFailsFast(t *testing.T) {
	boom := errors.New("quota exceeded")
	fn := func(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
		if items[0].Index == 0 {
			return nil, boom
		}
		results := make([]TranslationResult, len(items))
		for i, item := range items {
			results[i] = TranslationResult{Index: item.Index, Text: "ok"}
		}
		return results, nil
	}

	results, err := translateConcurrent(context.Background(), makeItems(20), 2, 2, fn)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped batch error, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no results alongside error")
	}
}

func TestTranslateConcurrentCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	_, err := translateConcurrent(ctx, makeItems(10), 2, 2, upperBatch(&calls))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
