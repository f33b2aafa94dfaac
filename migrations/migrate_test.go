// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// повторный прогон ничего не делает
	if err = Migrate(db); err != nil {
		t.Fatalf("expected idempotent migration, got: %v", err)
	}

	for _, table := range []string{"bookmarks", "tombstone_data"} {
		var name string
		row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err = row.Scan(&name); err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	if _, err = db.Exec(`INSERT INTO bookmarks (name, url, ordinal) VALUES ('a', 'b', 1)`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	// ordinal не уникален: сервер может вернуть дубликаты
	if _, err = db.Exec(`INSERT INTO bookmarks (name, url, ordinal) VALUES ('c', 'd', 1)`); err != nil {
		t.Errorf("expected duplicate ordinal to be accepted, got: %v", err)
	}

	var indexName string
	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'bookmarks_ordinal_uindex'`)
	if err = row.Scan(&indexName); err != sql.ErrNoRows {
		t.Errorf("expected unique ordinal index to be dropped, got: %v", err)
	}
}
