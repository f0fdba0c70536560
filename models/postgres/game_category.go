package postgres

/*
 * 'GameCategory' is the many-to-many link between Game and Category.
 * Rows go away with either side
 */
type GameCategory struct {
	ID         uint `gorm:"primaryKey"`
	GameID     uint `gorm:"not null;index"`
	CategoryID uint `gorm:"not null;index"`

	// Relationships
	Game     Game     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
