package persist

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/model"
	"github.com/lunaria-games/mmoserver/plugin/hook"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// characterUpdateColumns are the columns refreshed on upsert. The deleted
// flag is deliberately absent: saving a character never resurrects or
// deletes it.
var characterUpdateColumns = []string{
	"account", "class_name", "x", "y", "z", "level", "health", "mana",
	"strength", "intelligence", "experience", "skill_experience",
	"gold", "coins", "online", "last_saved",
}

// CharacterSaveTx flattens one character into its tables inside an
// already-open transaction. Child collections are fully replaced — delete
// then re-insert — so shrinking a collection can never leave ghost rows.
func (s *Store) CharacterSaveTx(ctx context.Context, tx *gorm.DB, p *player.Player, online bool) error {
	now := time.Now().UTC()
	row := model.Character{
		Name:            p.Name,
		Account:         p.Account,
		ClassName:       p.Class.Name,
		X:               p.Position.X,
		Y:               p.Position.Y,
		Z:               p.Position.Z,
		Level:           p.Level,
		Health:          p.Health,
		Mana:            p.Mana,
		Strength:        p.Strength,
		Intelligence:    p.Intelligence,
		Experience:      p.Experience,
		SkillExperience: p.SkillExperience,
		Gold:            p.Gold,
		Coins:           p.Coins,
		Online:          online,
		LastSaved:       &now,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(characterUpdateColumns),
	}).Create(&row).Error
	if err != nil {
		s.logger.Error("character upsert failed",
			zap.String("character", p.Name), zap.Error(err))
		return err
	}

	if err := s.saveInventory(tx, p); err != nil {
		return err
	}
	if err := s.saveEquipment(tx, p); err != nil {
		return err
	}
	if err := s.saveSkills(tx, p); err != nil {
		return err
	}
	if err := s.saveBuffs(tx, p); err != nil {
		return err
	}
	if err := s.saveQuests(tx, p); err != nil {
		return err
	}

	if err := s.hooks.Trigger(ctx, hook.CharacterSave, p); err != nil {
		s.logger.Warn("character-save hook failed",
			zap.String("character", p.Name), zap.Error(err))
	}
	return nil
}

// CharacterSave saves one character in its own transaction.
func (s *Store) CharacterSave(ctx context.Context, p *player.Player, online bool) error {
	return s.RunInTransaction(func(tx *gorm.DB) error {
		return s.CharacterSaveTx(ctx, tx, p, online)
	})
}

// CharacterSaveMany saves all given characters in one shared transaction,
// the primitive behind the periodic world checkpoint: one round trip, and
// a crash mid-batch loses nothing partially.
func (s *Store) CharacterSaveMany(ctx context.Context, players []*player.Player, online bool) error {
	batch := uuid.NewString()
	err := s.RunInTransaction(func(tx *gorm.DB) error {
		for _, p := range players {
			if err := s.CharacterSaveTx(ctx, tx, p, online); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("checkpoint batch failed",
			zap.String("batch", batch), zap.Int("count", len(players)), zap.Error(err))
		return err
	}
	s.logger.Info("checkpoint batch saved",
		zap.String("batch", batch), zap.Int("count", len(players)))
	return nil
}

func (s *Store) saveInventory(tx *gorm.DB, p *player.Player) error {
	_, err := s.Exec(tx,
		"DELETE FROM character_inventory WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	var rows []model.InventorySlot
	for i, slot := range p.Inventory {
		if slot.Empty() {
			continue
		}
		rows = append(rows, model.InventorySlot{
			CharacterName:      p.Name,
			Slot:               i,
			ItemName:           slot.Item.Name,
			Amount:             slot.Amount,
			SummonedHealth:     slot.SummonedHealth,
			SummonedLevel:      slot.SummonedLevel,
			SummonedExperience: slot.SummonedExperience,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) saveEquipment(tx *gorm.DB, p *player.Player) error {
	_, err := s.Exec(tx,
		"DELETE FROM character_equipment WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	var rows []model.EquipmentSlot
	for i, slot := range p.Equipment {
		if slot.Empty() {
			continue
		}
		rows = append(rows, model.EquipmentSlot{
			CharacterName:      p.Name,
			Slot:               i,
			ItemName:           slot.Item.Name,
			Amount:             slot.Amount,
			SummonedHealth:     slot.SummonedHealth,
			SummonedLevel:      slot.SummonedLevel,
			SummonedExperience: slot.SummonedExperience,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) saveSkills(tx *gorm.DB, p *player.Player) error {
	_, err := s.Exec(tx,
		"DELETE FROM character_skills WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	now := s.clock.Now()
	var rows []model.SkillRecord
	for _, sk := range p.Skills {
		if sk.Level <= 0 {
			// Unlearned template skills would only waste rows.
			continue
		}
		rows = append(rows, model.SkillRecord{
			CharacterName:     p.Name,
			Name:              sk.Def.Name,
			Level:             sk.Level,
			CastRemaining:     seconds(StoredRemaining(sk.CastTimeEnd, now)),
			CooldownRemaining: seconds(StoredRemaining(sk.CooldownEnd, now)),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) saveBuffs(tx *gorm.DB, p *player.Player) error {
	_, err := s.Exec(tx,
		"DELETE FROM character_buffs WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	now := s.clock.Now()
	var rows []model.BuffRecord
	for _, b := range p.Buffs {
		if b.Level <= 0 {
			continue
		}
		rows = append(rows, model.BuffRecord{
			CharacterName: p.Name,
			Name:          b.Def.Name,
			Level:         b.Level,
			BuffRemaining: seconds(StoredRemaining(b.BuffTimeEnd, now)),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) saveQuests(tx *gorm.DB, p *player.Player) error {
	_, err := s.Exec(tx,
		"DELETE FROM character_quests WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	var rows []model.QuestRecord
	for _, q := range p.Quests {
		rows = append(rows, model.QuestRecord{
			CharacterName: p.Name,
			Name:          q.Def.Name,
			Progress:      q.Progress,
			Completed:     q.Completed,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
