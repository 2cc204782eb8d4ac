package persist

import "github.com/lunaria-games/mmoserver/model"

// CharacterExists reports whether any character row carries the name,
// soft-deleted ones included: a deleted name must never become claimable
// again, or un-deleting would collide.
func (s *Store) CharacterExists(name string) (bool, error) {
	var count int64
	err := s.Scalar(s.db, &count,
		"SELECT COUNT(*) FROM characters WHERE name = @name",
		map[string]interface{}{"name": name})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CharacterDelete soft-deletes the character so it can be restored later.
func (s *Store) CharacterDelete(name string) error {
	_, err := s.Exec(s.db,
		"UPDATE characters SET deleted = 1 WHERE name = @name",
		map[string]interface{}{"name": name})
	return err
}

// CharactersForAccount lists the account's selectable (non-deleted)
// character names, oldest first.
func (s *Store) CharactersForAccount(account string) ([]string, error) {
	var rows []model.Character
	err := s.Select(s.db, &rows,
		"SELECT name FROM characters WHERE account = @account AND deleted = 0 ORDER BY created, name",
		map[string]interface{}{"account": account})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names, nil
}

// SetCharacterOffline clears the online flag, typically on logout after
// the final save.
func (s *Store) SetCharacterOffline(name string) error {
	_, err := s.Exec(s.db,
		"UPDATE characters SET online = 0 WHERE name = @name",
		map[string]interface{}{"name": name})
	return err
}

// SetAllOffline clears every online flag. Run at server start: rows left
// online by a crash would otherwise show ghost players until their next
// save.
func (s *Store) SetAllOffline() error {
	_, err := s.Exec(s.db, "UPDATE characters SET online = 0", nil)
	return err
}
