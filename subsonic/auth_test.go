package subsonic

import (
	"testing"
	"time"
	"unicode"
)

func TestAuthTokenDeterministic(t *testing.T) {
	if authToken("secret", "abcdefghij") != authToken("secret", "abcdefghij") {
		t.Errorf("same password and salt must produce the same token")
	}
	if authToken("secret", "abcdefghij") == authToken("other", "abcdefghij") {
		t.Errorf("different passwords must not collide on the same salt")
	}
	if authToken("secret", "abcdefghij") == authToken("secret", "jihgfedcba") {
		t.Errorf("different salts must not collide on the same password")
	}
}

func TestRandSeqAlphabetic(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		salt := randSeq(saltLength)
		if len(salt) != saltLength {
			t.Fatalf("salt length = %d, want %d", len(salt), saltLength)
		}
		for _, r := range salt {
			if !unicode.IsLetter(r) {
				t.Fatalf("salt %q contains non-letter %q", salt, r)
			}
		}
		seen[salt] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected varied salts, got %d distinct out of 50", len(seen))
	}
}

func TestInitGeneratesSessionMaterial(t *testing.T) {
	c1 := Init("http://srv", "alice", "pw", "soundtrack", "1.16.1", time.Second)
	c2 := Init("http://srv", "alice", "pw", "soundtrack", "1.16.1", time.Second)
	if c1.salt == c2.salt {
		t.Errorf("salt must be regenerated per session")
	}
	if c1.token != authToken("pw", c1.salt) {
		t.Errorf("token must be md5(password+salt)")
	}
}

func TestBuildParamsFixedKeysWin(t *testing.T) {
	c := Init("http://srv", "alice", "pw", "soundtrack", "1.16.1", time.Second)
	params := c.buildParams(map[string]string{
		"id": "42",
		"u":  "mallory",
		"f":  "xml",
	})
	if got := params.Get("u"); got != "alice" {
		t.Errorf("u = %q, want fixed value %q", got, "alice")
	}
	if got := params.Get("f"); got != "json" {
		t.Errorf("f = %q, want fixed value %q", got, "json")
	}
	if got := params.Get("id"); got != "42" {
		t.Errorf("id = %q, want caller value preserved", got)
	}
	for _, key := range []string{"t", "s", "v", "c"} {
		if params.Get(key) == "" {
			t.Errorf("missing fixed auth parameter %q", key)
		}
	}
	if len(params["u"]) != 1 {
		t.Errorf("u appears %d times, want exactly once", len(params["u"]))
	}
}
