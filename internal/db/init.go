package db

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"

	"gorm.io/gorm"
)

//go:embed scripts
var scripts embed.FS

const (
	schemaScript = "schema.sql"
	seedScript   = "seed.sql"
)

// Init applies the schema script and then the seed script for the active
// dialect. It is safe to run on every start.
func Init(ctx context.Context, db *gorm.DB) error {
	if err := Migrate(ctx, db); err != nil {
		return err
	}
	return Seed(ctx, db)
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	return runScript(ctx, db, schemaScript)
}

// Seed loads the sample menu and orders into an empty database. A database
// that already has categories is left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM product_categories").Scan(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	return runScript(ctx, db, seedScript)
}

func runScript(ctx context.Context, db *gorm.DB, name string) error {
	dialect := db.Dialector.Name()
	raw, err := scripts.ReadFile(path.Join("scripts", dialect, name))
	if err != nil {
		return fmt.Errorf("script %s for %s: %w", name, dialect, err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range SplitStatements(string(raw)) {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("%s statement %d: %w", name, i+1, err)
			}
		}
		return nil
	})
}

// SplitStatements cuts a script into single statements. Full-line "--"
// comments are dropped; statements end at a semicolon.
func SplitStatements(script string) []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			if stmt := strings.TrimSuffix(strings.TrimSpace(cur.String()), ";"); stmt != "" {
				out = append(out, stmt)
			}
			cur.Reset()
		}
	}
	if stmt := strings.TrimSpace(cur.String()); stmt != "" {
		out = append(out, stmt)
	}
	return out
}
