package model

import "time"

// Account represents a player account. Accounts are created implicitly on
// the first successful login attempt for an unknown name.
type Account struct {
	Name         string     `gorm:"primaryKey;size:16" json:"name"`
	PasswordHash string     `gorm:"size:64;not null" json:"-"`
	Created      time.Time  `gorm:"autoCreateTime" json:"created"`
	LastLogin    *time.Time `json:"last_login"`
	Banned       bool       `gorm:"not null;default:false" json:"banned"`

	Characters []Character `gorm:"foreignKey:Account;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
