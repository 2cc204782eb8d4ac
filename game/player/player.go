package player

import (
	"time"

	"github.com/lunaria-games/mmoserver/game/content"
	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/game/world"
)

// ItemSlot is one inventory or equipment slot of a live player. A slot
// with a nil item or zero amount is empty.
type ItemSlot struct {
	Item               *content.Item
	Amount             int
	SummonedHealth     int
	SummonedLevel      int
	SummonedExperience int64
}

func (s ItemSlot) Empty() bool {
	return s.Item == nil || s.Amount <= 0
}

// SkillState is one skill of a live player. CastTimeEnd and CooldownEnd
// are deadlines against the server game clock (uptime), not wall time.
// Level 0 means the class template has been declared but not learned.
type SkillState struct {
	Def         *content.Skill
	Level       int
	CastTimeEnd time.Duration
	CooldownEnd time.Duration
}

// BuffState is one active buff, referencing the skill that applied it.
type BuffState struct {
	Def         *content.Skill
	Level       int
	BuffTimeEnd time.Duration
}

// QuestState is one accepted quest.
type QuestState struct {
	Def       *content.Quest
	Progress  int
	Completed bool
}

// Player is the live gameplay entity the persistence layer serializes.
// The simulation owns it; this layer only reads and rebuilds it.
type Player struct {
	Name    string
	Account string
	Class   *content.Class

	Position world.Vector3

	Level           int
	Health          int
	Mana            int
	Strength        int
	Intelligence    int
	Experience      int64
	SkillExperience int64
	Gold            int64
	Coins           int64

	Inventory []ItemSlot // len == Class.InventorySize
	Equipment []ItemSlot // len == len(Class.EquipmentSlots)
	Skills    []SkillState
	Buffs     []BuffState
	Quests    []QuestState

	Guild *guild.Guild
}

// New instantiates a fresh entity from a class prototype: empty slot
// arrays at the class's declared capacities, level 1, no skills learned.
func New(class *content.Class) *Player {
	return &Player{
		Class:     class,
		Level:     1,
		Inventory: make([]ItemSlot, class.InventorySize),
		Equipment: make([]ItemSlot, len(class.EquipmentSlots)),
	}
}

// MaxHealth is the capacity health is clamped to. It depends on equipment
// and buffs, which is why the loader applies persisted health only after
// both collections are in place.
func (p *Player) MaxHealth() int {
	max := p.Class.BaseHealth
	for _, s := range p.Equipment {
		if !s.Empty() {
			max += s.Item.HealthBonus
		}
	}
	for _, b := range p.Buffs {
		max += b.Def.HealthBonus
	}
	return max
}

// MaxMana mirrors MaxHealth for mana.
func (p *Player) MaxMana() int {
	max := p.Class.BaseMana
	for _, s := range p.Equipment {
		if !s.Empty() {
			max += s.Item.ManaBonus
		}
	}
	for _, b := range p.Buffs {
		max += b.Def.ManaBonus
	}
	return max
}

// SkillIndex returns the index of the named skill in Skills, or -1.
func (p *Player) SkillIndex(name string) int {
	for i := range p.Skills {
		if p.Skills[i].Def.Name == name {
			return i
		}
	}
	return -1
}
