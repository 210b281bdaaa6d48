package authurl

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TokenParam is the query parameter carrying the access token.
const TokenParam = "authToken"

var (
	ErrNoToken      = errors.New("no token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Signer rewrites attachment URLs to embed a short-lived access token.
// Decoration is deterministic for a fixed clock, so the same URL signed at
// the same instant always yields the same result.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret []byte, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("empty signing secret")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %v", ttl)
	}
	return &Signer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Decorate appends a signed expiring token to raw and returns the rewritten
// URL. An existing token is replaced. Unparseable input passes through
// unchanged; the viewer that loads it surfaces the failure.
func (s *Signer) Decorate(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Del(TokenParam)
	u.RawQuery = q.Encode()
	exp := s.now().Add(s.ttl).Unix()
	q.Set(TokenParam, strconv.FormatInt(exp, 10)+"."+s.sign(u.String(), exp))
	u.RawQuery = q.Encode()
	return u.String()
}

// Verify checks the token embedded in raw against the URL it covers.
func (s *Signer) Verify(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", raw, err)
	}
	q := u.Query()
	tok := q.Get(TokenParam)
	if tok == "" {
		return ErrNoToken
	}
	expStr, sig, ok := strings.Cut(tok, ".")
	if !ok {
		return ErrTokenInvalid
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return ErrTokenInvalid
	}
	q.Del(TokenParam)
	u.RawQuery = q.Encode()
	if !hmac.Equal([]byte(sig), []byte(s.sign(u.String(), exp))) {
		return ErrTokenInvalid
	}
	if s.now().Unix() > exp {
		return ErrTokenExpired
	}
	return nil
}

func (s *Signer) sign(canonical string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonical))
	mac.Write([]byte("\n"))
	mac.Write([]byte(strconv.FormatInt(exp, 10)))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
