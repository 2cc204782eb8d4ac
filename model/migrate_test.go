package model_test

import (
	"testing"

	"github.com/lunaria-games/mmoserver/model"
	"github.com/lunaria-games/mmoserver/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrate_InsertAndQuery(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Account
	acc := &model.Account{Name: "alice", PasswordHash: "hash"}
	require.NoError(t, db.Create(acc).Error)

	// Character
	char := &model.Character{
		Name: "Hero", Account: acc.Name, ClassName: "Warrior",
		Level: 1, Health: 100, Mana: 50,
	}
	require.NoError(t, db.Create(char).Error)

	var found model.Character
	require.NoError(t, db.First(&found, "name = ?", "Hero").Error)
	assert.Equal(t, "alice", found.Account)
	assert.False(t, found.Deleted)

	// Child rows keyed by the character name.
	inv := &model.InventorySlot{CharacterName: char.Name, Slot: 0, ItemName: "Potion", Amount: 3}
	require.NoError(t, db.Create(inv).Error)

	sk := &model.SkillRecord{CharacterName: char.Name, Name: "Fireball", Level: 2, CooldownRemaining: 1.5}
	require.NoError(t, db.Create(sk).Error)

	// Guild + membership
	guild := &model.Guild{Name: "TestGuild", Notice: "welcome"}
	require.NoError(t, db.Create(guild).Error)
	gm := &model.GuildMember{CharacterName: char.Name, GuildName: guild.Name, Rank: model.GuildRankLeader}
	require.NoError(t, db.Create(gm).Error)

	// Order
	order := &model.Order{CharacterName: char.Name, Coins: 10}
	require.NoError(t, db.Create(order).Error)
	assert.Greater(t, order.ID, int64(0))
}
