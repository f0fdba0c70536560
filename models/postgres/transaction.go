package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

/*
 * 'Transaction' is one checkout. Amount is whatever the client declared at
 * payment time; the per-game prices live in TransactionGame
 */
type Transaction struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	Reference     string            `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	UserID        uint              `gorm:"not null;index" json:"userId"`
	Amount        decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        TransactionStatus `gorm:"type:varchar(20);not null" json:"status"`
	PaymentMethod string            `gorm:"size:50;not null" json:"paymentMethod"`
	CreatedAt     time.Time         `gorm:"not null;index" json:"createdAt"`

	// Relationships
	User  User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Games []TransactionGame `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
}

// TransactionGame snapshots the price a game was sold at
type TransactionGame struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID uint            `gorm:"not null;index" json:"transactionId"`
	GameID        uint            `gorm:"not null;index" json:"gameId"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
