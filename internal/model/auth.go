package model

// AccessToken is the payload embedded in every signed access token.
type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RefreshToken is the payload embedded in every signed refresh token. The
// counter must match the one stored for the family, otherwise the token is
// considered stolen and the whole family is revoked.
type RefreshToken struct {
	Family  string `json:"family"`
	Counter uint64 `json:"counter"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r RegisterResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r RegisterResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.User.ID}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r LoginResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r LoginResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.User.ID}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshTokenResponse) AccessTokenInfo() string {
	return r.AccessToken
}

type LogoutRequest struct{}

type LogoutResponse struct{}
