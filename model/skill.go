package model

// SkillRecord is one learned skill. Cast and cooldown are stored as
// seconds *remaining* rather than absolute deadlines: the server clock
// starts at zero on every boot, so deadlines would be meaningless across
// a restart.
type SkillRecord struct {
	CharacterName     string  `gorm:"primaryKey;size:16" json:"character_name"`
	Name              string  `gorm:"primaryKey;size:50" json:"name"`
	Level             int     `gorm:"not null" json:"level"`
	CastRemaining     float64 `gorm:"not null;default:0" json:"cast_remaining"`
	CooldownRemaining float64 `gorm:"not null;default:0" json:"cooldown_remaining"`
}

func (SkillRecord) TableName() string { return "character_skills" }

// BuffRecord is one active buff, with the same remaining-seconds
// convention as SkillRecord.
type BuffRecord struct {
	CharacterName string  `gorm:"primaryKey;size:16" json:"character_name"`
	Name          string  `gorm:"primaryKey;size:50" json:"name"`
	Level         int     `gorm:"not null" json:"level"`
	BuffRemaining float64 `gorm:"not null;default:0" json:"buff_remaining"`
}

func (BuffRecord) TableName() string { return "character_buffs" }
