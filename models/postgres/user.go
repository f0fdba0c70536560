package postgres

import (
	"time"
)

/*
 * 'User' contains the blueprint definition of a storefront account.
 * Password holds the bcrypt hash and is never serialized
 */
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
