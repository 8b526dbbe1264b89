package entity

type Quote struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Text string `gorm:"unique"`

	// Author is the display attribution of the quote, not the owning user.
	Author string
	Tags   Array[string]
}
