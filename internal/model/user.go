package model

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`

	// Email is only filled when the user requests their own profile.
	Email string `json:"email,omitempty"`

	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`

	CreatedAt string `json:"created_at"`
}

// ShortUser is the compact attribution attached to quotes and comments.
type ShortUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	Username string `json:"username"`
}

type GetUserResponse struct {
	User User `json:"user"`
}
