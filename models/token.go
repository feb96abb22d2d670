package models

// AuthToken is the token pair returned by the identity provider on refresh.
// The empty pair means the refresh failed.
type AuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether this is the failed refresh sentinel
func (t AuthToken) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}
