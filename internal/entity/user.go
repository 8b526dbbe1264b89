package entity

type User struct {
	Base
	Username string `gorm:"unique"`
	Name     string
	Email    string `gorm:"unique"`

	// Password is the bcrypt hash of the user password. It must never be
	// serialized to clients; the model layer has no field for it.
	Password string
}
