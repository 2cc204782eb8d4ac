package persist

import (
	"github.com/lunaria-games/mmoserver/model"
	"gorm.io/datatypes"
)

// AddOrder appends a purchase to the ledger. receipt may carry the raw
// provider payload for support lookups; nil is fine.
func (s *Store) AddOrder(characterName string, coins int64, receipt []byte) error {
	row := model.Order{
		CharacterName: characterName,
		Coins:         coins,
	}
	if receipt != nil {
		row.Receipt = datatypes.JSON(receipt)
	}
	return s.db.Create(&row).Error
}

// GrabCharacterOrders claims the character's unprocessed orders and
// returns their coin amounts in insertion order. Rows are flagged, never
// deleted, so the ledger keeps its audit trail.
//
// Each claim is a conditional update on processed=0 checked by rows
// affected, so an order can be granted at most once even when two
// fulfillers share the database: the loser of the race simply skips the
// row.
func (s *Store) GrabCharacterOrders(characterName string) ([]int64, error) {
	var rows []model.Order
	err := s.Select(s.db, &rows,
		"SELECT id, coins FROM character_orders WHERE character_name = @character AND processed = 0 ORDER BY id",
		map[string]interface{}{"character": characterName})
	if err != nil {
		return nil, err
	}

	var coins []int64
	for _, r := range rows {
		n, err := s.Exec(s.db,
			"UPDATE character_orders SET processed = 1 WHERE id = @id AND processed = 0",
			map[string]interface{}{"id": r.ID})
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Someone else claimed it between the select and the update.
			continue
		}
		coins = append(coins, r.Coins)
	}
	return coins, nil
}
