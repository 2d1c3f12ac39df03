package x

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// Credentials are the four static OAuth 1.0a user-context secrets.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// NewOAuth1HTTPClient returns a client that signs every request with creds.
// Signed requests are sent through base, or http.DefaultClient when base is nil.
func NewOAuth1HTTPClient(ctx context.Context, base *http.Client, creds Credentials) *http.Client {
	if base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, base)
	}

	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	return config.Client(ctx, token)
}
