package model

// GuildRank is a member's rank within a guild. Higher values outrank lower.
type GuildRank = int

const (
	GuildRankMember GuildRank = 0
	GuildRankVice   GuildRank = 1
	GuildRankLeader GuildRank = 2
)

// Guild is the persisted guild info row.
type Guild struct {
	Name   string `gorm:"primaryKey;size:16" json:"name"`
	Notice string `gorm:"type:text" json:"notice"`

	Members []GuildMember `gorm:"foreignKey:GuildName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Guild) TableName() string { return "guild_info" }

// GuildMember links a character to its guild. The character name is the
// primary key: a character belongs to at most one guild.
type GuildMember struct {
	CharacterName string `gorm:"primaryKey;size:16" json:"character_name"`
	GuildName     string `gorm:"index:idx_guild_members;size:16;not null" json:"guild_name"`
	Rank          int    `gorm:"not null;default:0" json:"rank"`
}

func (GuildMember) TableName() string { return "character_guild" }
