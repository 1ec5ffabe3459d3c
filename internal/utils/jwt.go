package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for every verification failure mode
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by VerifyAccessToken for every failure mode:
// bad signature, wrong algorithm, malformed token, expired token, or a
// missing subject claim.  Collapsing them into one value keeps callers from
// leaking which specific check failed.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are self-contained: they are
// never persisted server side and simply expire.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the subject (the username), and a TTL in minutes.  It
// returns an AccessToken containing the signed token and its expiration
// time.  The JWT carries standard claims: subject (sub), expiration (exp)
// and issued at (iat).
func NewAccessToken(secret, subject string, ttlMin int) (AccessToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    // Construct the JWT claims.  MapClaims allows arbitrary key/value pairs;
    // sub carries the username, exp the expiration Unix timestamp and iat
    // the issued-at time.
    claims := jwt.MapClaims{
        "sub": subject,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    // Create a new token object specifying the signing method (HS256) and
    // include the claims.
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    // Sign the token with the provided secret and obtain the string form.
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw bearer token and returns the
// subject claim.  Verification is a pure function of (token, current time,
// secret); the library enforces the exp claim against the clock.  Any
// failure is reported as ErrInvalidToken.
func VerifyAccessToken(secret, raw string) (string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Only accept HMAC; a token re-signed with another algorithm must
        // not validate.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrInvalidToken
    }
    sub, ok := claims["sub"].(string)
    if !ok || sub == "" {
        return "", ErrInvalidToken
    }
    return sub, nil
}
