package postgres

import "time"

/*
 * 'Category' groups games for browsing. It is linked to Game through
 * the GameCategory table
 */
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
