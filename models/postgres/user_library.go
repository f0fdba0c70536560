package postgres

import "time"

/*
 * 'UserLibrary' records a purchased game. Rows are only written by checkout
 * and never updated
 */
type UserLibrary struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	GameID       uint      `gorm:"not null;index" json:"gameId"`
	PurchaseDate time.Time `gorm:"not null;autoCreateTime" json:"purchaseDate"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserLibrary) TableName() string {
	return "user_library"
}
