package persist

import (
	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuildExists reports whether a guild info row carries the name.
func (s *Store) GuildExists(name string) (bool, error) {
	var count int64
	err := s.Scalar(s.db, &count,
		"SELECT COUNT(*) FROM guild_info WHERE name = @name",
		map[string]interface{}{"name": name})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoadGuild fetches the guild aggregate: info row plus roster. Members
// currently online take their level and status from the live registry —
// disk data for an active player is always stale; the rest fall back to
// their persisted character row, defaulting to level 1 when even that is
// missing (which means referential integrity was already broken).
func (s *Store) LoadGuild(name string) (*guild.Guild, error) {
	g := &guild.Guild{Name: name}

	var infos []model.Guild
	err := s.Select(s.db, &infos,
		"SELECT * FROM guild_info WHERE name = @name",
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if len(infos) > 0 {
		g.Notice = infos[0].Notice
	}

	var members []model.GuildMember
	err = s.Select(s.db, &members,
		"SELECT * FROM character_guild WHERE guild_name = @guild",
		map[string]interface{}{"guild": name})
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		mem := guild.Member{Name: m.CharacterName, Rank: m.Rank}
		if live := s.registry.Get(m.CharacterName); live != nil {
			mem.Online = true
			mem.Level = live.Level
		} else {
			mem.Level = 1
			var chars []model.Character
			err := s.Select(s.db, &chars,
				"SELECT level FROM characters WHERE name = @name",
				map[string]interface{}{"name": m.CharacterName})
			if err != nil {
				return nil, err
			}
			if len(chars) > 0 {
				mem.Level = chars[0].Level
			}
		}
		g.Members = append(g.Members, mem)
	}
	return g, nil
}

// SaveGuild upserts the info row and fully replaces the membership list
// in one transaction.
func (s *Store) SaveGuild(g *guild.Guild) error {
	return s.RunInTransaction(func(tx *gorm.DB) error {
		info := model.Guild{Name: g.Name, Notice: g.Notice}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"notice"}),
		}).Create(&info).Error
		if err != nil {
			return err
		}

		_, err = s.Exec(tx,
			"DELETE FROM character_guild WHERE guild_name = @guild",
			map[string]interface{}{"guild": g.Name})
		if err != nil {
			return err
		}
		var rows []model.GuildMember
		for _, m := range g.Members {
			rows = append(rows, model.GuildMember{
				CharacterName: m.Name,
				GuildName:     g.Name,
				Rank:          m.Rank,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// RemoveGuild deletes the info row and all membership rows. The FK
// cascade on guild_info would remove the membership rows anyway; the
// explicit second delete keeps the operation correct on engines where
// cascade enforcement is off.
func (s *Store) RemoveGuild(name string) error {
	return s.RunInTransaction(func(tx *gorm.DB) error {
		if _, err := s.Exec(tx,
			"DELETE FROM character_guild WHERE guild_name = @name",
			map[string]interface{}{"name": name}); err != nil {
			return err
		}
		_, err := s.Exec(tx,
			"DELETE FROM guild_info WHERE name = @name",
			map[string]interface{}{"name": name})
		return err
	})
}
