package persist

import (
	"context"
	"testing"

	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedGuild(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	bob := f.newWarrior(t, "alice", "Bob")
	carol := f.newWarrior(t, "alice", "Carol")
	require.NoError(t, f.store.CharacterSave(ctx, bob, false))
	require.NoError(t, f.store.CharacterSave(ctx, carol, false))

	require.NoError(t, f.store.SaveGuild(&guild.Guild{
		Name:   "Knights",
		Notice: "be kind",
		Members: []guild.Member{
			{Name: "Bob", Rank: model.GuildRankLeader},
			{Name: "Carol", Rank: model.GuildRankMember},
		},
	}))
}

func TestGuildExists(t *testing.T) {
	f := newFixture(t)
	f.seedGuild(t)

	exists, err := f.store.GuildExists("Knights")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.store.GuildExists("Nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadGuild_LiveMembersEnrichedFromRegistry(t *testing.T) {
	f := newFixture(t)
	f.seedGuild(t)

	// Bob is online at a level the disk hasn't seen yet.
	class, ok := f.catalog.Class("Warrior")
	require.True(t, ok)
	bobLive := player.New(class)
	bobLive.Name = "Bob"
	bobLive.Level = 42
	f.registry.Register(bobLive)
	defer f.registry.Unregister("Bob")

	g, err := f.store.LoadGuild("Knights")
	require.NoError(t, err)
	assert.Equal(t, "Knights", g.Name)
	assert.Equal(t, "be kind", g.Notice)
	require.Len(t, g.Members, 2)

	byName := map[string]guild.Member{}
	for _, m := range g.Members {
		byName[m.Name] = m
	}
	assert.True(t, byName["Bob"].Online)
	assert.Equal(t, 42, byName["Bob"].Level, "live level beats the persisted row")
	assert.False(t, byName["Carol"].Online)
	assert.Equal(t, 7, byName["Carol"].Level, "offline member falls back to the character row")
}

func TestCharacterLoad_GuildLoadedOnDemandAndCached(t *testing.T) {
	f := newFixture(t)
	f.seedGuild(t)
	ctx := context.Background()

	bob, err := f.store.CharacterLoad(ctx, "Bob", false)
	require.NoError(t, err)
	require.NotNil(t, bob.Guild)
	assert.Equal(t, "Knights", bob.Guild.Name)
	assert.Equal(t, 1, f.guilds.Len())

	// The second member attaches the already-resident aggregate.
	carol, err := f.store.CharacterLoad(ctx, "Carol", false)
	require.NoError(t, err)
	assert.Same(t, bob.Guild, carol.Guild)
	assert.Equal(t, 1, f.guilds.Len())
}

func TestSaveGuild_ReplacesRoster(t *testing.T) {
	f := newFixture(t)
	f.seedGuild(t)

	require.NoError(t, f.store.SaveGuild(&guild.Guild{
		Name:    "Knights",
		Notice:  "new notice",
		Members: []guild.Member{{Name: "Carol", Rank: model.GuildRankLeader}},
	}))

	g, err := f.store.LoadGuild("Knights")
	require.NoError(t, err)
	assert.Equal(t, "new notice", g.Notice)
	require.Len(t, g.Members, 1)
	assert.Equal(t, "Carol", g.Members[0].Name)
	assert.Equal(t, model.GuildRankLeader, g.Members[0].Rank)
}

func TestRemoveGuild(t *testing.T) {
	f := newFixture(t)
	f.seedGuild(t)

	require.NoError(t, f.store.RemoveGuild("Knights"))

	exists, err := f.store.GuildExists("Knights")
	require.NoError(t, err)
	assert.False(t, exists)

	var count int64
	require.NoError(t, f.store.Scalar(f.store.db, &count,
		"SELECT COUNT(*) FROM character_guild WHERE guild_name = @name",
		map[string]interface{}{"name": "Knights"}))
	assert.Equal(t, int64(0), count)
}
