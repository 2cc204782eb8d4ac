package model

// QuestRecord tracks a character's progress on one quest.
type QuestRecord struct {
	CharacterName string `gorm:"primaryKey;size:16" json:"character_name"`
	Name          string `gorm:"primaryKey;size:50" json:"name"`
	Progress      int    `gorm:"not null;default:0" json:"progress"`
	Completed     bool   `gorm:"not null;default:false" json:"completed"`
}

func (QuestRecord) TableName() string { return "character_quests" }
