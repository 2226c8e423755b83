package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"garmincoach/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveAndQueryDispatches(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := []storage.DispatchRecord{
		{Op: "fetch-data", Kind: "activities", Target: "fetch", Status: "ok", TS: base},
		{Op: "coaching", Kind: "activity", Target: "coaching", Status: "operation_failed", ExitCode: 1, Diagnostic: "boom", TS: base.Add(time.Minute)},
		{Op: "fetch-data", Kind: "health", Target: "fetch", Status: "ok", TS: base.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		if err := st.SaveDispatch(ctx, rec); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := st.QueryDispatches(ctx, storage.DispatchQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].Kind != "health" {
		t.Fatalf("expected newest first, got %#v", got[0])
	}
	if got[1].Diagnostic != "boom" || got[1].ExitCode != 1 {
		t.Fatalf("unexpected record: %#v", got[1])
	}
}

func TestQueryDispatchesFilterByOp(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_ = st.SaveDispatch(ctx, storage.DispatchRecord{Op: "fetch-data", Kind: "activities", Status: "ok"})
	_ = st.SaveDispatch(ctx, storage.DispatchRecord{Op: "coaching", Kind: "activity", Status: "ok"})

	got, err := st.QueryDispatches(ctx, storage.DispatchQuery{Op: "coaching"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Op != "coaching" {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestQueryDispatchesLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := st.SaveDispatch(ctx, storage.DispatchRecord{Op: "example", Kind: "data", Status: "ok"}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, err := st.QueryDispatches(ctx, storage.DispatchQuery{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}
