package entity

import "time"

// Follower is a single follow edge. Both directions of the relation derive
// from the same row, so the followers and following views can never
// disagree with each other.
type Follower struct {
	CreatedAt time.Time

	// FollowerID follows FollowingID.
	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FollowingID string `gorm:"primaryKey"`
	Following   User   `gorm:"foreignKey:FollowingID"`
}
