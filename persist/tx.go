package persist

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunInTransaction opens one connection and transaction, hands the bound
// handle to fn, commits when fn returns nil and otherwise rolls back and
// returns fn's error unchanged. Partial writes from a failed unit of work
// are never visible.
//
// Isolation is the storage engine's default (REPEATABLE READ on MySQL,
// SERIALIZABLE on SQLite).
func (s *Store) RunInTransaction(fn func(tx *gorm.DB) error) error {
	err := s.db.Transaction(fn)
	if err != nil {
		s.logger.Error("transaction rolled back", zap.Error(err))
	}
	return err
}
