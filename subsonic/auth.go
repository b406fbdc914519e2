package subsonic

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

const saltLength = 10

func randSeq(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// authToken derives the salted token the Subsonic protocol expects instead of
// the raw password. MD5 is what the protocol mandates; this is compatibility,
// not security.
func authToken(password, salt string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(password+salt)))
}

// Init builds a Client bound to one session. The salt is generated here, once,
// and never reused across logins; the password itself is not retained.
func Init(baseURL, username, password, clientID, apiVersion string, timeout time.Duration) *Client {
	salt := randSeq(saltLength)
	return &Client{
		baseURL:    baseURL,
		username:   username,
		token:      authToken(password, salt),
		salt:       salt,
		clientID:   clientID,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// buildParams merges endpoint-specific parameters with the fixed auth set.
// Fixed keys are applied last so a caller can never shadow them.
func (c *Client) buildParams(extraParams map[string]string) url.Values {
	params := url.Values{}
	for k, v := range extraParams {
		params.Add(k, v)
	}
	params.Set("u", c.username)
	params.Set("t", c.token)
	params.Set("s", c.salt)
	params.Set("v", c.apiVersion)
	params.Set("c", c.clientID)
	params.Set("f", "json")
	return params
}
