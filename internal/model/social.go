package model

type Comment struct {
	ID        string    `json:"id"`
	User      ShortUser `json:"user"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"created_at"`
}

type ToggleLikeRequest struct {
	QuoteID string `json:"quote_id"`
}

type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type CreateCommentRequest struct {
	QuoteID string `json:"quote_id"`
	Text    string `json:"text"`
}

type CreateCommentResponse struct {
	Comment Comment `json:"comment"`
}

type EditCommentRequest struct {
	QuoteID   string `json:"quote_id"`
	CommentID string `json:"comment_id"`
	Text      string `json:"text"`
}

type EditCommentResponse struct {
	Comment Comment `json:"comment"`
}

type DeleteCommentRequest struct {
	QuoteID   string `json:"quote_id"`
	CommentID string `json:"comment_id"`
}

type DeleteCommentResponse struct{}

type ToggleFollowRequest struct {
	Username string `json:"username"`
}

type ToggleFollowResponse struct {
	Following      bool  `json:"following"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

type GetFollowStatusRequest struct {
	Username string `json:"username"`
}

type GetFollowStatusResponse struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}
