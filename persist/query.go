package persist

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The three statement shapes every store operation is built from. All of
// them take a SQL template with @named parameters and a parameter map;
// values are never interpolated into the template. Failures are logged
// with the offending template and returned wrapped — retry/fatal policy
// belongs to the caller.

// Exec runs a statement that returns no rows and reports how many rows it
// touched.
func (s *Store) Exec(tx *gorm.DB, query string, args map[string]interface{}) (int64, error) {
	res := tx.Exec(query, namedArgs(args)...)
	if res.Error != nil {
		s.logger.Error("statement failed",
			zap.String("query", query), zap.Error(res.Error))
		return 0, fmt.Errorf("persist: exec: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Scalar runs a single-value query into dest (e.g. a *int64 for counts).
// With no matching rows dest is left untouched.
func (s *Store) Scalar(tx *gorm.DB, dest interface{}, query string, args map[string]interface{}) error {
	if err := tx.Raw(query, namedArgs(args)...).Scan(dest).Error; err != nil {
		s.logger.Error("scalar query failed",
			zap.String("query", query), zap.Error(err))
		return fmt.Errorf("persist: scalar: %w", err)
	}
	return nil
}

// Select runs a row-set query into the slice dest points at. Rows come
// back as model structs, fields addressed by column name through their
// gorm tags.
func (s *Store) Select(tx *gorm.DB, dest interface{}, query string, args map[string]interface{}) error {
	if err := tx.Raw(query, namedArgs(args)...).Scan(dest).Error; err != nil {
		s.logger.Error("row-set query failed",
			zap.String("query", query), zap.Error(err))
		return fmt.Errorf("persist: select: %w", err)
	}
	return nil
}

func namedArgs(args map[string]interface{}) []interface{} {
	if len(args) == 0 {
		return nil
	}
	return []interface{}{args}
}
