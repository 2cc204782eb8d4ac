package persist

import (
	"context"
	"fmt"
	"time"

	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/game/world"
	"github.com/lunaria-games/mmoserver/model"
	"github.com/lunaria-games/mmoserver/plugin/hook"
	"go.uber.org/zap"
)

// CharacterLoad reconstructs the full character aggregate into a live
// entity. A missing or soft-deleted row returns (nil, nil) — "no such
// character" is not an error. A class that no longer resolves against the
// catalog is a hard error: the character cannot be rebuilt.
//
// isPreview loads for the character-selection screen: the entity is
// assembled but the character is not marked online.
func (s *Store) CharacterLoad(ctx context.Context, name string, isPreview bool) (*player.Player, error) {
	var rows []model.Character
	err := s.Select(s.db, &rows,
		"SELECT * FROM characters WHERE name = @name AND deleted = 0",
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	class, ok := s.catalog.Class(row.ClassName)
	if !ok {
		s.logger.Error("no class prototype for character",
			zap.String("character", name), zap.String("class", row.ClassName))
		return nil, fmt.Errorf("persist: class %q not found for character %q", row.ClassName, name)
	}

	p := player.New(class)
	p.Name = row.Name
	p.Account = row.Account
	p.Level = min(row.Level, class.MaxLevel)
	p.Strength = row.Strength
	p.Intelligence = row.Intelligence
	p.Experience = row.Experience
	p.SkillExperience = row.SkillExperience
	p.Gold = row.Gold
	p.Coins = row.Coins

	// The saved position may no longer be walkable: terrain changes, or
	// the character logged out inside an instance that is gone now.
	pos := world.Vector3{X: row.X, Y: row.Y, Z: row.Z}
	if snapped, ok := s.terrain.Sample(pos, s.cfg.SpawnTolerance); ok {
		p.Position = snapped
	} else {
		p.Position = s.terrain.NearestSpawn(pos)
	}

	if err := s.loadInventory(p); err != nil {
		return nil, err
	}
	if err := s.loadEquipment(p); err != nil {
		return nil, err
	}
	if err := s.loadSkills(p); err != nil {
		return nil, err
	}
	if err := s.loadBuffs(p); err != nil {
		return nil, err
	}
	if err := s.loadQuests(p); err != nil {
		return nil, err
	}
	if err := s.loadGuildOnDemand(p); err != nil {
		return nil, err
	}

	// Health and mana last: their caps depend on equipment and buffs.
	p.Health = clamp(row.Health, 0, p.MaxHealth())
	p.Mana = clamp(row.Mana, 0, p.MaxMana())

	// Mark online immediately instead of waiting for the next periodic
	// save; previews never join the world, so they stay untouched.
	if !isPreview {
		now := time.Now().UTC()
		_, err := s.Exec(s.db,
			"UPDATE characters SET online = 1, last_saved = @now WHERE name = @name",
			map[string]interface{}{"now": now, "name": name})
		if err != nil {
			return nil, err
		}
	}

	if err := s.hooks.Trigger(ctx, hook.CharacterLoad, p); err != nil {
		s.logger.Warn("character-load hook failed",
			zap.String("character", name), zap.Error(err))
	}
	return p, nil
}

func (s *Store) loadInventory(p *player.Player) error {
	var rows []model.InventorySlot
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_inventory WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	for _, r := range rows {
		if r.Slot < 0 || r.Slot >= len(p.Inventory) {
			s.logger.Warn("inventory slot beyond class capacity, skipped",
				zap.String("character", p.Name), zap.Int("slot", r.Slot),
				zap.Int("capacity", len(p.Inventory)))
			continue
		}
		item, ok := s.catalog.Item(r.ItemName)
		if !ok {
			s.logger.Warn("inventory item no longer in catalog, skipped",
				zap.String("character", p.Name), zap.String("item", r.ItemName))
			continue
		}
		p.Inventory[r.Slot] = player.ItemSlot{
			Item:               item,
			Amount:             r.Amount,
			SummonedHealth:     r.SummonedHealth,
			SummonedLevel:      r.SummonedLevel,
			SummonedExperience: r.SummonedExperience,
		}
	}
	return nil
}

func (s *Store) loadEquipment(p *player.Player) error {
	var rows []model.EquipmentSlot
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_equipment WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	for _, r := range rows {
		if r.Slot < 0 || r.Slot >= len(p.Equipment) {
			s.logger.Warn("equipment slot beyond class capacity, skipped",
				zap.String("character", p.Name), zap.Int("slot", r.Slot),
				zap.Int("capacity", len(p.Equipment)))
			continue
		}
		item, ok := s.catalog.Item(r.ItemName)
		if !ok {
			s.logger.Warn("equipment item no longer in catalog, skipped",
				zap.String("character", p.Name), zap.String("item", r.ItemName))
			continue
		}
		p.Equipment[r.Slot] = player.ItemSlot{
			Item:               item,
			Amount:             r.Amount,
			SummonedHealth:     r.SummonedHealth,
			SummonedLevel:      r.SummonedLevel,
			SummonedExperience: r.SummonedExperience,
		}
	}
	return nil
}

func (s *Store) loadSkills(p *player.Player) error {
	// Pre-populate from the class's skill templates so content updates
	// apply to existing characters; persisted rows only overlay level and
	// timing onto declared skills.
	for _, tmpl := range p.Class.SkillTemplates {
		def, ok := s.catalog.Skill(tmpl)
		if !ok {
			s.logger.Warn("class skill template not in catalog, skipped",
				zap.String("class", p.Class.Name), zap.String("skill", tmpl))
			continue
		}
		p.Skills = append(p.Skills, player.SkillState{Def: def})
	}

	var rows []model.SkillRecord
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_skills WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	now := s.clock.Now()
	for _, r := range rows {
		idx := p.SkillIndex(r.Name)
		if idx < 0 {
			s.logger.Warn("skill row not in class templates, skipped",
				zap.String("character", p.Name), zap.String("skill", r.Name))
			continue
		}
		sk := &p.Skills[idx]
		sk.Level = clamp(r.Level, 1, sk.Def.MaxLevel)
		sk.CastTimeEnd = Deadline(duration(r.CastRemaining), now)
		sk.CooldownEnd = Deadline(duration(r.CooldownRemaining), now)
	}
	return nil
}

func (s *Store) loadBuffs(p *player.Player) error {
	var rows []model.BuffRecord
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_buffs WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	now := s.clock.Now()
	for _, r := range rows {
		def, ok := s.catalog.Skill(r.Name)
		if !ok {
			s.logger.Warn("buff skill no longer in catalog, skipped",
				zap.String("character", p.Name), zap.String("buff", r.Name))
			continue
		}
		p.Buffs = append(p.Buffs, player.BuffState{
			Def:         def,
			Level:       clamp(r.Level, 1, def.MaxLevel),
			BuffTimeEnd: Deadline(duration(r.BuffRemaining), now),
		})
	}
	return nil
}

func (s *Store) loadQuests(p *player.Player) error {
	var rows []model.QuestRecord
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_quests WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	for _, r := range rows {
		def, ok := s.catalog.Quest(r.Name)
		if !ok {
			s.logger.Warn("quest no longer in catalog, skipped",
				zap.String("character", p.Name), zap.String("quest", r.Name))
			continue
		}
		p.Quests = append(p.Quests, player.QuestState{
			Def:       def,
			Progress:  r.Progress,
			Completed: r.Completed,
		})
	}
	return nil
}

// loadGuildOnDemand attaches the character's guild, loading it into the
// cache the first time any member logs in. Guilds with no online members
// never pay the load cost.
func (s *Store) loadGuildOnDemand(p *player.Player) error {
	var rows []model.GuildMember
	err := s.Select(s.db, &rows,
		"SELECT * FROM character_guild WHERE character_name = @character",
		map[string]interface{}{"character": p.Name})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	g, err := s.guilds.GetOrLoad(rows[0].GuildName, s.LoadGuild)
	if err != nil {
		return err
	}
	p.Guild = g
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
