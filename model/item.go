package model

// InventorySlot is one occupied bag slot. Empty slots are not persisted:
// absence of a (character, slot) row means the slot is empty. The summoned
// fields carry runtime state for item instances that own a pet/summon.
type InventorySlot struct {
	CharacterName      string `gorm:"primaryKey;size:16" json:"character_name"`
	Slot               int    `gorm:"primaryKey;autoIncrement:false" json:"slot"`
	ItemName           string `gorm:"size:50;not null" json:"item_name"`
	Amount             int    `gorm:"not null" json:"amount"`
	SummonedHealth     int    `gorm:"not null;default:0" json:"summoned_health"`
	SummonedLevel      int    `gorm:"not null;default:0" json:"summoned_level"`
	SummonedExperience int64  `gorm:"not null;default:0" json:"summoned_experience"`
}

func (InventorySlot) TableName() string { return "character_inventory" }

// EquipmentSlot mirrors InventorySlot for worn equipment.
type EquipmentSlot struct {
	CharacterName      string `gorm:"primaryKey;size:16" json:"character_name"`
	Slot               int    `gorm:"primaryKey;autoIncrement:false" json:"slot"`
	ItemName           string `gorm:"size:50;not null" json:"item_name"`
	Amount             int    `gorm:"not null" json:"amount"`
	SummonedHealth     int    `gorm:"not null;default:0" json:"summoned_health"`
	SummonedLevel      int    `gorm:"not null;default:0" json:"summoned_level"`
	SummonedExperience int64  `gorm:"not null;default:0" json:"summoned_experience"`
}

func (EquipmentSlot) TableName() string { return "character_equipment" }
