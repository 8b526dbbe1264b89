package entity

type Comment struct {
	Base

	QuoteID string `gorm:"index"`
	Quote   Quote  `gorm:"foreignKey:QuoteID"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Text string
}
