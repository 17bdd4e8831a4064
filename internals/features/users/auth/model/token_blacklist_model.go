package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist guarda access tokens revogados no logout até expirarem
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	Token                   string    `gorm:"column:token;type:text;not null;index" json:"token"`
	TokenBlacklistExpiresAt time.Time `gorm:"column:token_blacklist_expires_at;not null" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
