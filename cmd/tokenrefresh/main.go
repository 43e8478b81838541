package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://graph.facebook.com/v19.0/oauth/access_token"

var (
	loadEnvFunc = godotenv.Load
	httpClient  = &http.Client{Timeout: 30 * time.Second}
)

// TokenResponse is the exchange reply: a long-lived token plus the
// number of seconds until it expires.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func main() {
	loadEnvFunc()

	clientID := os.Getenv("OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("OAUTH_CLIENT_SECRET")
	shortToken := os.Getenv("OAUTH_EXCHANGE_TOKEN")
	if clientID == "" || clientSecret == "" || shortToken == "" {
		log.Fatal("OAUTH_CLIENT_ID, OAUTH_CLIENT_SECRET and OAUTH_EXCHANGE_TOKEN are required")
	}

	endpoint := os.Getenv("OAUTH_TOKEN_ENDPOINT")
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultEndpoint
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := exchangeToken(ctx, httpClient, endpoint, clientID, clientSecret, shortToken)
	if err != nil {
		log.Fatalf("token exchange failed: %v", err)
	}

	expires := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	fmt.Printf("access_token: %s\n", token.AccessToken)
	fmt.Printf("token_type:   %s\n", token.TokenType)
	fmt.Printf("expires_in:   %d seconds (until %s)\n", token.ExpiresIn, expires.Format("2006-01-02 15:04:05"))
}

// exchangeToken trades a short-lived token for a long-lived one via the
// provider's fb_exchange_token grant.
func exchangeToken(ctx context.Context, client *http.Client, endpoint, clientID, clientSecret, shortToken string) (*TokenResponse, error) {
	q := url.Values{}
	q.Set("grant_type", "fb_exchange_token")
	q.Set("client_id", clientID)
	q.Set("client_secret", clientSecret)
	q.Set("fb_exchange_token", shortToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned empty access_token")
	}
	return &token, nil
}
