package model

import "gorm.io/gorm"

// allModels lists every model to be auto-migrated, parents before children
// so foreign keys resolve.
var allModels = []interface{}{
	&Account{},
	&Character{},
	&InventorySlot{},
	&EquipmentSlot{},
	&SkillRecord{},
	&BuffRecord{},
	&QuestRecord{},
	&Order{},
	&Guild{},
	&GuildMember{},
}

// AutoMigrate creates any missing tables in the given database. It never
// drops or rewrites existing columns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels...)
}
