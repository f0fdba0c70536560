package postgres

import "time"

/*
 * 'CartItem' is a game queued for purchase. The unique index keeps a
 * single row per (user, game) even when two adds race
 */
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_game" json:"userId"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_game" json:"gameId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}
