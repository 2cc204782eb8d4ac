package persist

import (
	"testing"
	"time"

	"github.com/lunaria-games/mmoserver/game/content"
	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/game/world"
	"github.com/lunaria-games/mmoserver/plugin/hook"
	"github.com/lunaria-games/mmoserver/presence"
	"github.com/lunaria-games/mmoserver/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock is a settable game clock for deterministic deadline tests.
type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func testCatalog() *content.Catalog {
	c := content.NewCatalog()
	c.AddItem(&content.Item{Name: "Potion", MaxStack: 99})
	c.AddItem(&content.Item{Name: "Sword", MaxStack: 1, HealthBonus: 10})
	c.AddItem(&content.Item{Name: "Helm", MaxStack: 1, ManaBonus: 5})
	c.AddSkill(&content.Skill{Name: "Fireball", MaxLevel: 5, CastTime: 1.5, Cooldown: 8})
	c.AddSkill(&content.Skill{Name: "Haste", MaxLevel: 3, BuffTime: 30, ManaBonus: 5})
	c.AddQuest(&content.Quest{Name: "Slay Slimes", Target: 10})
	c.AddClass(&content.Class{
		Name:           "Warrior",
		MaxLevel:       60,
		InventorySize:  10,
		EquipmentSlots: []string{"Weapon", "Head"},
		SkillTemplates: []string{"Fireball"},
		BaseHealth:     100,
		BaseMana:       50,
	})
	return c
}

type fixture struct {
	store    *Store
	clock    *fakeClock
	registry *player.Registry
	guilds   *guild.Cache
	hooks    *hook.Center
	catalog  *content.Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	clock := &fakeClock{}
	catalog := testCatalog()
	registry := player.NewRegistry(presence.NewLocalStore(), logger)
	guilds := guild.NewCache()
	hooks := hook.NewCenter()
	terrain := &world.BoxTerrain{
		MinX: -100, MaxX: 100, MinZ: -100, MaxZ: 100,
		Spawns: []world.Vector3{{X: 1, Y: 0, Z: 1}},
	}

	store := NewStore(db, clock, catalog, terrain, registry, guilds, hooks, Config{}, logger)
	return &fixture{
		store:    store,
		clock:    clock,
		registry: registry,
		guilds:   guilds,
		hooks:    hooks,
		catalog:  catalog,
	}
}

// newWarrior builds a live character owned by an account that already
// exists (saving needs the accounts FK satisfied).
func (f *fixture) newWarrior(t *testing.T, account, name string) *player.Player {
	t.Helper()
	ok, err := f.store.TryLogin(account, "pw")
	require.NoError(t, err)
	require.True(t, ok)

	class, ok2 := f.catalog.Class("Warrior")
	require.True(t, ok2)
	p := player.New(class)
	p.Name = name
	p.Account = account
	p.Position = world.Vector3{X: 3, Y: 0, Z: 4}
	p.Level = 7
	p.Health = 80
	p.Mana = 40
	p.Strength = 12
	p.Intelligence = 9
	p.Experience = 1234
	p.SkillExperience = 56
	p.Gold = 500
	p.Coins = 3
	return p
}
