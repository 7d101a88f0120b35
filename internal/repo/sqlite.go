package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"github.com/mkessler/hobby-tracker/internal/domain"
	"github.com/mkessler/hobby-tracker/migrations"
)

// storageKey is the single kv-table key the whole hobby list lives under,
// mirroring the one fixed key the mobile client uses in its device store.
const storageKey = "hobbies_list"

// OpenSQLite opens (or creates) the SQLite database at path, enables WAL
// mode, and applies any pending goose migrations from the embedded FS.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: enable WAL: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, migrations.FS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: run migrations: %w", err)
	}

	return db, nil
}

// SQLiteHobbyRepo is the durable implementation of HobbyRepo. It stores the
// entire record list as one JSON array under a single key in the kv table —
// the same whole-array read-modify-write shape the mobile client uses
// against its device key-value store. Ids are derived from the wall clock
// in milliseconds.
//
// A mutex serializes every operation so the read-modify-write cycle (and id
// assignment within it) is atomic with respect to other callers of this
// instance.
type SQLiteHobbyRepo struct {
	mu  sync.Mutex
	db  *sqlx.DB
	log *slog.Logger
}

// NewSQLiteHobbyRepo constructs a SQLiteHobbyRepo over an already-migrated
// database (see OpenSQLite). The logger records storage read failures,
// which are degraded rather than propagated.
func NewSQLiteHobbyRepo(db *sqlx.DB, log *slog.Logger) *SQLiteHobbyRepo {
	return &SQLiteHobbyRepo{db: db, log: log}
}

// List returns all records in insertion order.
// An unreadable or corrupt stored array degrades to an empty list.
func (r *SQLiteHobbyRepo) List(ctx context.Context) ([]domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadAll(ctx), nil
}

// GetByID returns the record with the given id.
func (r *SQLiteHobbyRepo) GetByID(ctx context.Context, id string) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.loadAll(ctx) {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hobby{}, fmt.Errorf("repo.SQLiteHobbyRepo.GetByID: %w", domain.ErrNotFound)
}

// Create assigns a wall-clock id, stamps both timestamps, appends the record
// and writes the whole array back. All of it happens under one lock, and the
// generator bumps the millisecond until the id is free, so two creates in
// the same clock tick cannot share an id.
func (r *SQLiteHobbyRepo) Create(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hobbies := r.loadAll(ctx)
	now := time.Now().UTC()

	hobby.ID = freshClockID(hobbies, now)
	hobby.CreatedAt = now
	hobby.UpdatedAt = now

	hobbies = append(hobbies, hobby)
	if err := r.saveAll(ctx, hobbies); err != nil {
		return domain.Hobby{}, fmt.Errorf("repo.SQLiteHobbyRepo.Create: %w", err)
	}
	return hobby, nil
}

// Update merges the patch over the stored record and writes the array back.
func (r *SQLiteHobbyRepo) Update(ctx context.Context, id string, patch domain.HobbyPatch) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hobbies := r.loadAll(ctx)
	for i, h := range hobbies {
		if h.ID == id {
			merged := patch.Apply(h, time.Now().UTC())
			hobbies[i] = merged
			if err := r.saveAll(ctx, hobbies); err != nil {
				return domain.Hobby{}, fmt.Errorf("repo.SQLiteHobbyRepo.Update: %w", err)
			}
			return merged, nil
		}
	}
	return domain.Hobby{}, fmt.Errorf("repo.SQLiteHobbyRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the record with the given id and writes the array back.
func (r *SQLiteHobbyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hobbies := r.loadAll(ctx)
	for i, h := range hobbies {
		if h.ID == id {
			hobbies = append(hobbies[:i], hobbies[i+1:]...)
			if err := r.saveAll(ctx, hobbies); err != nil {
				return fmt.Errorf("repo.SQLiteHobbyRepo.Delete: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("repo.SQLiteHobbyRepo.Delete: %w", domain.ErrNotFound)
}

// Reset deletes the stored array entirely. The wall-clock generator has no
// state to reset.
func (r *SQLiteHobbyRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, storageKey); err != nil {
		return fmt.Errorf("repo.SQLiteHobbyRepo.Reset: %w", err)
	}
	return nil
}

// loadAll reads and decodes the stored array. Read and decode failures are
// logged and degraded to an empty list — reads never propagate a storage
// error to the caller. Callers must hold r.mu.
func (r *SQLiteHobbyRepo) loadAll(ctx context.Context) []domain.Hobby {
	var raw string
	err := r.db.GetContext(ctx, &raw, `SELECT value FROM kv WHERE key = ?`, storageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Hobby{}
	}
	if err != nil {
		r.log.Warn("hobby list read failed, returning empty list", "error", err)
		return []domain.Hobby{}
	}

	var hobbies []domain.Hobby
	if err := json.Unmarshal([]byte(raw), &hobbies); err != nil {
		r.log.Warn("hobby list decode failed, returning empty list", "error", err)
		return []domain.Hobby{}
	}
	return hobbies
}

// saveAll encodes the array and writes it back under the storage key.
// Write failures propagate, unlike read failures. Callers must hold r.mu.
func (r *SQLiteHobbyRepo) saveAll(ctx context.Context, hobbies []domain.Hobby) error {
	raw, err := json.Marshal(hobbies)
	if err != nil {
		return fmt.Errorf("encode hobby list: %w", err)
	}

	const q = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, q, storageKey, string(raw)); err != nil {
		return fmt.Errorf("write hobby list: %w", err)
	}
	return nil
}

// freshClockID returns the wall-clock millisecond id, advanced past any id
// already present in the collection.
func freshClockID(hobbies []domain.Hobby, now time.Time) string {
	taken := make(map[string]bool, len(hobbies))
	for _, h := range hobbies {
		taken[h.ID] = true
	}

	ms := now.UnixMilli()
	for taken[strconv.FormatInt(ms, 10)] {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}
