package postgres

// Screenshot belongs to exactly one game
type Screenshot struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	GameID uint   `gorm:"not null;index" json:"gameId"`
	URL    string `gorm:"not null" json:"url"`
}
