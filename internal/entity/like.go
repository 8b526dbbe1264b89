package entity

import "time"

// Like is one user's like of one quote. The composite primary key makes the
// like set a true set: a second like by the same user is a conflicting row,
// never a duplicate.
type Like struct {
	CreatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	QuoteID string `gorm:"primaryKey"`
	Quote   Quote  `gorm:"foreignKey:QuoteID"`
}
