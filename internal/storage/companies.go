package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/common"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// ListLearnedCompanies returns all learned companies in insertion order.
// The classifier consults them in exactly this order, before the static
// catalog.
func (s *SQLiteStorage) ListLearnedCompanies(ctx context.Context) ([]model.Company, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, keywords, default_type
		FROM learned_companies
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query learned companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var companies []model.Company
	for rows.Next() {
		var (
			name        string
			keywordsRaw string
			defaultType sql.NullString
		)
		if err := rows.Scan(&name, &keywordsRaw, &defaultType); err != nil {
			return nil, fmt.Errorf("failed to scan learned company: %w", err)
		}

		var keywords []string
		if err := json.Unmarshal([]byte(keywordsRaw), &keywords); err != nil {
			return nil, fmt.Errorf("corrupt keywords for %q: %w", name, err)
		}

		var t *model.ReceiptType
		if defaultType.Valid {
			parsed, ok := model.ParseReceiptType(defaultType.String)
			if !ok {
				return nil, fmt.Errorf("corrupt receipt type %q for %q", defaultType.String, name)
			}
			t = &parsed
		}

		companies = append(companies, model.NewCompany(name, keywords, t, true))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate learned companies: %w", err)
	}
	return companies, nil
}

// SaveLearnedCompany stores a learned company. Saving an existing name
// replaces the record and moves it to the end of the overlay order.
func (s *SQLiteStorage) SaveLearnedCompany(ctx context.Context, company model.Company) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCompany(company); err != nil {
		return err
	}

	keywordsRaw, err := json.Marshal(normalizeKeywords(company.Keywords))
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	var defaultType sql.NullString
	if company.DefaultType != nil {
		defaultType = sql.NullString{String: string(*company.DefaultType), Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Delete-then-insert rather than upsert-in-place: the fresh
	// autoincrement id is what moves the record to the end.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM learned_companies WHERE name = ?`, company.Name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to replace learned company: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO learned_companies (name, keywords, default_type) VALUES (?, ?, ?)`,
		company.Name, string(keywordsRaw), defaultType); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert learned company: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit learned company: %w", err)
	}
	return nil
}

// DeleteLearnedCompany removes a learned company by name.
func (s *SQLiteStorage) DeleteLearnedCompany(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM learned_companies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete learned company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("learned company %q: %w", name, common.ErrNotFound)
	}
	return nil
}

// ExportLearnedCompanies serializes the overlay as indented JSON, in
// insertion order.
func (s *SQLiteStorage) ExportLearnedCompanies(ctx context.Context) ([]byte, error) {
	companies, err := s.ListLearnedCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}

	data, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode learned companies: %w", err)
	}
	return data, nil
}

// ImportLearnedCompanies merges a JSON export into the overlay and returns
// the number of records imported. Each record is upserted by name, so
// re-importing an export is harmless and the last record wins on duplicate
// names within one file.
func (s *SQLiteStorage) ImportLearnedCompanies(ctx context.Context, data []byte) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var companies []model.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	imported := 0
	for i, c := range companies {
		c.IsLearned = true
		if err := validateCompany(c); err != nil {
			return imported, fmt.Errorf("record %d: %w", i, err)
		}
		if err := s.SaveLearnedCompany(ctx, c); err != nil {
			return imported, fmt.Errorf("record %d (%s): %w", i, c.Name, err)
		}
		imported++
	}
	return imported, nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, strings.ToLower(strings.TrimSpace(kw)))
	}
	return out
}
