// README: DB-backed chat store tests (gated on WAYFARER_TEST_DSN).
package chat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("WAYFARER_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFARER_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE chats, users CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewStore(db), db
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// repoRoot walks up from the working directory until go.mod is found.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func createTestUser(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(), `
        INSERT INTO users (username, password_hash) VALUES ('store-test-user', 'x')
        RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return id
}

func TestStoreAppendAndList(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, db)

	first := &Record{UserID: userID, Message: "first", Response: "r1", Timestamp: time.Now().UTC().Add(-time.Minute)}
	second := &Record{UserID: userID, Message: "second", Response: "r2", Timestamp: time.Now().UTC()}
	for _, r := range []*Record{first, second} {
		if err := store.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
		if r.ID == 0 {
			t.Fatal("expected assigned ID")
		}
	}

	records, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Message != "first" || records[1].Message != "second" {
		t.Errorf("wrong order: %+v", records)
	}

	// Other users see nothing.
	other, err := store.ListByUser(ctx, userID+1)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected empty history for other user, got %d", len(other))
	}
}

func TestStoreCascadeDelete(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, db)

	if err := store.Append(ctx, &Record{UserID: userID, Message: "m", Response: "r", Timestamp: time.Now().UTC()}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := db.Exec(ctx, "DELETE FROM users WHERE id = $1", userID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	records, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected cascade delete to remove records, got %d", len(records))
	}
}
