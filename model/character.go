package model

import "time"

// Character is the persisted form of a player character. Child collections
// (inventory, equipment, skills, buffs, quests, orders) live in their own
// tables keyed by the character name and cascade on delete/rename.
//
// Deleted is a soft-delete flag: rows are never removed, so a deleted
// character's name can never be claimed by someone else.
type Character struct {
	Name            string     `gorm:"primaryKey;size:16" json:"name"`
	Account         string     `gorm:"index:idx_characters_account;size:16;not null" json:"account"`
	ClassName       string     `gorm:"size:16;not null" json:"class_name"`
	X               float64    `gorm:"not null" json:"x"`
	Y               float64    `gorm:"not null" json:"y"`
	Z               float64    `gorm:"not null" json:"z"`
	Level           int        `gorm:"not null;default:1" json:"level"`
	Health          int        `gorm:"not null" json:"health"`
	Mana            int        `gorm:"not null" json:"mana"`
	Strength        int        `gorm:"not null;default:0" json:"strength"`
	Intelligence    int        `gorm:"not null;default:0" json:"intelligence"`
	Experience      int64      `gorm:"not null;default:0" json:"experience"`
	SkillExperience int64      `gorm:"not null;default:0" json:"skill_experience"`
	Gold            int64      `gorm:"not null;default:0" json:"gold"`
	Coins           int64      `gorm:"not null;default:0" json:"coins"`
	Online          bool       `gorm:"not null;default:false" json:"online"`
	LastSaved       *time.Time `json:"last_saved"`
	Deleted         bool       `gorm:"not null;default:false" json:"deleted"`
	Created         time.Time  `gorm:"autoCreateTime" json:"created"`

	Inventory       []InventorySlot `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Equipment       []EquipmentSlot `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Skills          []SkillRecord   `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Buffs           []BuffRecord    `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quests          []QuestRecord   `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Orders          []Order         `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	GuildMembership *GuildMember    `gorm:"foreignKey:CharacterName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
