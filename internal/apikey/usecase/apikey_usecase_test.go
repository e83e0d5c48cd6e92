package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"lifeops-backend/internal/apikey/domain"
	"lifeops-backend/internal/apikey/repository"
	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/backing/backingtest"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
)

type fixture struct {
	fake    *backingtest.Fake
	backend *kv.MemoryBackend
	now     time.Time
	u       ApiKeyUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		fake:    backingtest.New(),
		backend: kv.NewMemoryBackend(),
		now:     time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
	}
	clk := clock.Clock{Loc: time.UTC, Now: func() time.Time { return f.now }}
	workbooks := provision.NewWorkbooks(f.fake, f.fake, f.backend)
	f.u = NewApiKeyUsecase(
		repository.NewSheetRepository(f.fake, f.fake, workbooks),
		repository.NewPinRepository(f.backend),
		clk,
	)
	return f
}

func (f *fixture) vaultID(t *testing.T) string {
	t.Helper()
	id, ok, _ := f.backend.Scope("u1").Get(context.Background(), repository.SpreadsheetKey)
	if !ok {
		t.Fatalf("vault id not cached")
	}
	return id
}

func TestVaultSkipsSpreadsheetWithoutTab(t *testing.T) {
	f := newFixture(t)
	folderID := f.fake.SeedFile(repository.FolderName, backing.MimeFolder, "", "")
	impostor := f.fake.SeedSpreadsheet(repository.SpreadsheetName, folderID, "Sheet1")

	keys, err := f.u.List(backingtest.Context(), "u1", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("keys=%v, want empty", keys)
	}

	id := f.vaultID(t)
	if id == impostor {
		t.Fatalf("impostor spreadsheet accepted")
	}
	if titles := f.fake.SheetTitles(id); !reflect.DeepEqual(titles, []string{"ApiKeys"}) {
		t.Fatalf("tabs=%v", titles)
	}
	if parents := f.fake.Parents(id); len(parents) != 1 || parents[0] != folderID {
		t.Fatalf("parents=%v, want [%s]", parents, folderID)
	}
	if rows := f.fake.Rows(id, "ApiKeys"); len(rows) != 1 || !reflect.DeepEqual(rows[0], repository.Sheet.Headers) {
		t.Fatalf("rows=%v", rows)
	}
}

func TestCreateListUpdateMasksSecrets(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()

	created, err := f.u.Create(ctx, "u1", domain.ApiKey{ServiceName: "OpenAI", KeyName: "dev", APIKey: "sk-1234567890abcd"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.APIKey != "sk-1••••••••abcd" {
		t.Fatalf("masked=%q", created.APIKey)
	}
	if created.ID != "1767614400000" || created.CreatedAt != "2026-01-05T12:00:00.000Z" || created.UpdatedAt != created.CreatedAt {
		t.Fatalf("created=%+v", created)
	}

	rows := f.fake.Rows(f.vaultID(t), "ApiKeys")
	if len(rows) != 2 || rows[1][3] != "sk-1234567890abcd" {
		t.Fatalf("stored rows=%v", rows)
	}

	f.now = f.now.Add(time.Hour)
	desc := "rotated"
	masked := created.APIKey
	updated, err := f.u.Update(ctx, "u1", created.ID, domain.Patch{Description: &desc, APIKey: &masked})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CreatedAt != created.CreatedAt || updated.UpdatedAt != "2026-01-05T13:00:00.000Z" {
		t.Fatalf("updated=%+v", updated)
	}
	secret, err := f.u.Reveal(ctx, "u1", created.ID, "")
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if secret != "sk-1234567890abcd" {
		t.Fatalf("secret=%q, masked echo overwrote it", secret)
	}

	keys, err := f.u.List(ctx, "u1", true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 1 || keys[0].Description != "rotated" || keys[0].APIKey == secret {
		t.Fatalf("keys=%+v", keys)
	}
}

func TestCreateRequiresServiceAndKey(t *testing.T) {
	f := newFixture(t)
	_, err := f.u.Create(backingtest.Context(), "u1", domain.ApiKey{ServiceName: "  ", APIKey: "x"})
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestRevealHonoursPin(t *testing.T) {
	f := newFixture(t)
	ctx := backingtest.Context()
	k, err := f.u.Create(ctx, "u1", domain.ApiKey{ServiceName: "Gemini", APIKey: "AIza-secret-value"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.u.SetPin(ctx, "u1", "", "12"); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("short pin err=%v, want ErrInvalid", err)
	}
	if err := f.u.SetPin(ctx, "u1", "", "4821"); err != nil {
		t.Fatalf("SetPin: %v", err)
	}
	if ok, _ := f.u.HasPin(ctx, "u1"); !ok {
		t.Fatalf("HasPin=false after SetPin")
	}
	if _, err := f.u.Reveal(ctx, "u1", k.ID, "0000"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("wrong pin err=%v, want ErrForbidden", err)
	}
	if s, err := f.u.Reveal(ctx, "u1", k.ID, "4821"); err != nil || s != "AIza-secret-value" {
		t.Fatalf("Reveal=%q err=%v", s, err)
	}
	if err := f.u.SetPin(ctx, "u1", "0000", ""); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("clear with wrong pin err=%v, want ErrForbidden", err)
	}
	if err := f.u.SetPin(ctx, "u1", "4821", ""); err != nil {
		t.Fatalf("clear pin: %v", err)
	}
	if ok, _ := f.u.HasPin(ctx, "u1"); ok {
		t.Fatalf("HasPin=true after clearing")
	}
}

func TestRevealRequiresSession(t *testing.T) {
	f := newFixture(t)
	if _, err := f.u.Reveal(context.Background(), "u1", "1", ""); !errors.Is(err, apperr.ErrSignedOut) {
		t.Fatalf("err=%v, want ErrSignedOut", err)
	}
}

func TestMask(t *testing.T) {
	cases := map[string]string{
		"":                "••••••••",
		"short":           "••••••••",
		"12345678":        "••••••••",
		"123456789":       "1234••••••••6789",
		"키키키키값값값값비밀": "키키키키••••••••값값비밀",
	}
	for in, want := range cases {
		if got := domain.Mask(in); got != want {
			t.Errorf("Mask(%q)=%q, want %q", in, got, want)
		}
	}
}
