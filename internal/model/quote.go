package model

type Quote struct {
	ID     string    `json:"id"`
	User   ShortUser `json:"user"`
	Text   string    `json:"text"`
	Author string    `json:"author"`
	Tags   []string  `json:"tags"`

	LikesCount int64 `json:"likes_count"`

	// Liked reports whether the requesting user likes this quote. Always
	// false for anonymous requests.
	Liked bool `json:"liked"`

	Comments []Comment `json:"comments,omitempty"`

	CreatedAt string `json:"created_at"`
}

type CreateQuoteRequest struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

type CreateQuoteResponse struct {
	Quote Quote `json:"quote"`
}

type GetQuotesRequest struct{}

type GetQuotesResponse struct {
	Quotes []Quote `json:"quotes"`
}

type GetQuoteRequest struct {
	QuoteID string `json:"quote_id"`
}

type GetQuoteResponse struct {
	Quote Quote `json:"quote"`
}

type UpdateQuoteRequest struct {
	QuoteID string   `json:"quote_id"`
	Text    string   `json:"text"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

type UpdateQuoteResponse struct {
	Quote Quote `json:"quote"`
}

type DeleteQuoteRequest struct {
	QuoteID string `json:"quote_id"`
}

type DeleteQuoteResponse struct{}
