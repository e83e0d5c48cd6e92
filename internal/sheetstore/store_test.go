package sheetstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/backing/backingtest"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
)

type note struct {
	ID    string
	Title string
	Done  bool
}

type noteMapper struct{}

func (noteMapper) ID(n note) string { return n.ID }

func (noteMapper) ToRow(n note) []string {
	return []string{n.ID, n.Title, Bool(n.Done), "", ""}
}

func (noteMapper) FromRow(row, _ []string) note {
	return note{ID: Cell(row, 0), Title: Cell(row, 1), Done: ParseBool(Cell(row, 2))}
}

type fixture struct {
	fake  *backingtest.Fake
	cache kv.Store
	store *Store[note]
	cfg   provision.SheetConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := backingtest.New()
	cache := kv.NewMemoryStore()
	cfg := provision.MustTab(provision.TabTodayTasks)
	wb := provision.NewWorkbook(fake, fake, cache)
	return &fixture{fake: fake, cache: cache, cfg: cfg, store: New[note](fake, wb, cfg, noteMapper{})}
}

func (f *fixture) spreadsheetID(t *testing.T) string {
	t.Helper()
	id, ok, _ := f.cache.Get(context.Background(), provision.WorkbookCacheKey)
	if !ok {
		t.Fatalf("spreadsheet id not cached")
	}
	return id
}

func TestLoadOnFreshSessionCreatesWorkbook(t *testing.T) {
	f := newFixture(t)
	if err := f.store.Load(backingtest.Context()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	id := f.spreadsheetID(t)
	if n := len(f.fake.SheetTitles(id)); n != 9 {
		t.Fatalf("tabs=%d, want 9", n)
	}
	for _, tab := range provision.Tabs {
		if rows := f.fake.Rows(id, tab.Title); len(rows) == 0 || !reflect.DeepEqual(rows[0], tab.Headers) {
			t.Fatalf("%s header rows=%v", tab.Key, rows)
		}
	}
	snap := f.store.Snapshot()
	if len(snap.Data) != 0 || snap.Error != "" || snap.IsLoading {
		t.Fatalf("snapshot=%+v, want empty and idle", snap)
	}
	if snap.SpreadsheetID != id {
		t.Fatalf("SpreadsheetID=%q, want %q", snap.SpreadsheetID, id)
	}
}

func TestLoadReplacesTrashedWorkbook(t *testing.T) {
	f := newFixture(t)
	old := f.fake.SeedSpreadsheet(provision.WorkbookName, "", f.cfg.Title)
	f.fake.Trash(old)
	_ = f.cache.Set(context.Background(), provision.WorkbookCacheKey, old)

	if err := f.store.Load(backingtest.Context()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	id := f.spreadsheetID(t)
	if id == old {
		t.Fatalf("trashed spreadsheet still cached")
	}
	if f.fake.Calls("FindByName") != 1 || f.fake.Calls("Create") != 1 {
		t.Fatalf("FindByName=%d Create=%d, want 1 each", f.fake.Calls("FindByName"), f.fake.Calls("Create"))
	}
}

func TestLoadMapsRowsAfterHeader(t *testing.T) {
	f := newFixture(t)
	id := f.fake.SeedSpreadsheet(provision.WorkbookName, "", f.cfg.Title)
	f.fake.SetRows(id, f.cfg.Title, [][]string{
		f.cfg.Headers,
		{"t1", "first", "true"},
		{"t2", "second"},
	})

	if err := f.store.Load(backingtest.Context()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []note{{ID: "t1", Title: "first", Done: true}, {ID: "t2", Title: "second"}}
	if got := f.store.Data(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Data=%v, want %v", got, want)
	}
}

func TestLoadUnauthorizedIsEmptyAndSilent(t *testing.T) {
	f := newFixture(t)
	id := f.fake.SeedSpreadsheet(provision.WorkbookName, "", f.cfg.Title)
	f.fake.SetRows(id, f.cfg.Title, [][]string{f.cfg.Headers, {"t1", "x"}})
	if err := f.store.Load(backingtest.Context()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f.fake.Unauthorized = true
	if err := f.store.Load(backingtest.Context()); err != nil {
		t.Fatalf("Load after 401: %v, want nil", err)
	}
	snap := f.store.Snapshot()
	if len(snap.Data) != 0 || snap.Error != "" {
		t.Fatalf("snapshot=%+v, want empty with no error", snap)
	}
}

func TestLoadWithoutTokenTouchesNothing(t *testing.T) {
	f := newFixture(t)
	if err := f.store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := f.fake.Calls("Stat") + f.fake.Calls("FindByName") + f.fake.Calls("Create"); n != 0 {
		t.Fatalf("backend calls=%d, want 0", n)
	}
	if err := f.store.Add(context.Background(), note{ID: "t1"}); !errors.Is(err, ErrSignedOut) {
		t.Fatalf("Add err=%v, want ErrSignedOut", err)
	}
}

func TestAddIsVisibleWithoutRefetch(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	if err := f.store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	f.fake.ResetCalls()

	if err := f.store.Add(ctx, note{ID: "t1", Title: "X"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := f.store.Add(ctx, note{ID: "t2", Title: "Y"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n := f.fake.Calls("Values"); n != 0 {
		t.Fatalf("Values calls=%d, want 0", n)
	}
	got := f.store.Data()
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t1" {
		t.Fatalf("Data=%v, want t2 prepended before t1", got)
	}
	rows := f.fake.Rows(f.spreadsheetID(t), f.cfg.Title)
	if len(rows) != 3 || rows[1][0] != "t1" || rows[2][0] != "t2" {
		t.Fatalf("rows=%v, want appended in order", rows)
	}
}

func TestUpdateUnknownIDKeepsData(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	_ = f.store.Load(ctx)
	_ = f.store.Add(ctx, note{ID: "t1", Title: "X"})
	before := f.store.Snapshot()

	err := f.store.Update(ctx, "missing", note{ID: "missing", Title: "Z"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if msg := apperr.Message(err); msg != MsgUpdateFailed {
		t.Fatalf("message=%q, want %q", msg, MsgUpdateFailed)
	}
	after := f.store.Snapshot()
	if !reflect.DeepEqual(before.Data, after.Data) || after.Error != MsgUpdateFailed {
		t.Fatalf("state: %+v -> %+v", before, after)
	}
	if n := f.fake.Calls("UpdateValues"); n != 0 {
		t.Fatalf("UpdateValues calls=%d, want 0", n)
	}
}

func TestSequenceMatchesSubmissionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	_ = f.store.Load(ctx)

	steps := []func() error{
		func() error { return f.store.Add(ctx, note{ID: "a", Title: "A"}) },
		func() error { return f.store.Add(ctx, note{ID: "b", Title: "B"}) },
		func() error { return f.store.Add(ctx, note{ID: "c", Title: "C"}) },
		func() error { return f.store.Update(ctx, "b", note{ID: "b", Title: "B2", Done: true}) },
		func() error { return f.store.Delete(ctx, "a") },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	want := []note{{ID: "c", Title: "C"}, {ID: "b", Title: "B2", Done: true}}
	if got := f.store.Data(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Data=%v, want %v", got, want)
	}

	if err := f.store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	wantRemote := []note{{ID: "b", Title: "B2", Done: true}, {ID: "c", Title: "C"}}
	if got := f.store.Data(); !reflect.DeepEqual(got, wantRemote) {
		t.Fatalf("after refresh Data=%v, want %v", got, wantRemote)
	}
}

func TestDeleteUnknownIDFails(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	_ = f.store.Load(ctx)
	err := f.store.Delete(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if msg := apperr.Message(err); msg != MsgDeleteFailed {
		t.Fatalf("message=%q, want %q", msg, MsgDeleteFailed)
	}
	if n := f.fake.Calls("DeleteRows"); n != 0 {
		t.Fatalf("DeleteRows calls=%d, want 0", n)
	}
}

func TestMutationClearsPreviousError(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	_ = f.store.Load(ctx)
	_ = f.store.Add(ctx, note{ID: "t1", Title: "X"})

	if err := f.store.Delete(ctx, "nope"); err == nil {
		t.Fatalf("Delete succeeded, want failure")
	}
	if got := f.store.Err(); got != MsgDeleteFailed {
		t.Fatalf("Err=%q, want %q", got, MsgDeleteFailed)
	}

	f.fake.Fail["Values"] = errors.New("503 backend error")
	err := f.store.Update(ctx, "t1", note{ID: "t1", Title: "Y"})
	if apperr.Message(err) != MsgUpdateFailed || f.store.Err() != MsgUpdateFailed {
		t.Fatalf("err=%v Err=%q, want %q", err, f.store.Err(), MsgUpdateFailed)
	}
	delete(f.fake.Fail, "Values")

	if err := f.store.Add(ctx, note{ID: "t2"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := f.store.Err(); got != "" {
		t.Fatalf("Err=%q after success, want empty", got)
	}
}

func TestAddFailureRecordsMessage(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	_ = f.store.Load(ctx)
	f.fake.Fail["AppendValues"] = errors.New("503 backend error")

	if err := f.store.Add(ctx, note{ID: "t1"}); err == nil {
		t.Fatalf("Add succeeded, want failure")
	}
	snap := f.store.Snapshot()
	if snap.Error != MsgAddFailed {
		t.Fatalf("Error=%q, want %q", snap.Error, MsgAddFailed)
	}
	if len(snap.Data) != 0 || snap.IsSaving {
		t.Fatalf("snapshot=%+v, want unchanged and idle", snap)
	}
}

func TestPoolKeepsOneStorePerUser(t *testing.T) {
	fake := backingtest.New()
	cache := kv.NewMemoryBackend()
	cfg := provision.MustTab(provision.TabTodayTasks)
	pool := NewPool(func(userID string) *Store[note] {
		return New[note](fake, provision.NewWorkbook(fake, fake, cache.Scope(userID)), cfg, noteMapper{})
	})
	if pool.For("a@example.com") != pool.For("a@example.com") {
		t.Fatalf("pool returned different stores for one user")
	}
	if pool.For("a@example.com") == pool.For("b@example.com") {
		t.Fatalf("pool shared a store across users")
	}
}

var _ backing.Spreadsheets = (*backingtest.Fake)(nil)
var _ backing.Files = (*backingtest.Fake)(nil)
var _ backing.Documents = (*backingtest.Fake)(nil)
