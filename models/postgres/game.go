package postgres

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func init() {
	// Prices travel as JSON numbers, the frontend does arithmetic on them
	decimal.MarshalJSONWithoutQuotes = true
}

/*
 * 'Game' is a catalog entry. Price, OriginalPrice and Discount are display
 * values: nothing keeps them consistent with each other
 */
type Game struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Title              string          `gorm:"not null" json:"title"`
	ShortDescription   string          `gorm:"type:text;not null" json:"shortDescription"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	HeaderImage        string          `gorm:"not null" json:"headerImage"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"originalPrice"`
	Discount           int             `gorm:"not null" json:"discount"`
	ReleaseDate        time.Time       `gorm:"not null" json:"releaseDate"`
	Developer          string          `gorm:"not null" json:"developer"`
	Publisher          string          `gorm:"not null" json:"publisher"`
	Languages          string          `gorm:"not null" json:"languages"`
	IsFeatured         bool            `gorm:"not null;index" json:"isFeatured"`
	IsSpecialOffer     bool            `gorm:"not null;index" json:"isSpecialOffer"`
	IsNewRelease       bool            `gorm:"not null;index" json:"isNewRelease"`
	IsPopular          bool            `gorm:"not null;index" json:"isPopular"`
	SystemRequirements datatypes.JSON  `gorm:"type:jsonb" json:"systemRequirements,omitempty"`
	CreatedAt          time.Time       `gorm:"not null" json:"createdAt"`

	// Relationships
	Screenshots []Screenshot `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"screenshots,omitempty"`
}
