package utils // package utils provides helpers for token issuing and password hashing

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every issued token: the username as
// the registered subject plus a numeric user id, alongside iat/exp.
// Timestamps are second-resolution; a token is expired the moment the
// current time equals exp.
type Claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// NewToken builds and signs an HS256 JWT for a user. The ttl is given in
// seconds; access and refresh tokens share this constructor and differ
// only in the lifetime the caller configures. A negative ttl produces an
// already-expired token, which the tests rely on.
func NewToken(secret, username string, userID uint64, ttlSec int) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlSec) * time.Second)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken parses a token and fully validates it: structure, HMAC
// signature and expiry. Callers that need to distinguish failure modes
// can use errors.Is against jwt.ErrTokenMalformed,
// jwt.ErrTokenSignatureInvalid and jwt.ErrTokenExpired.
func VerifyToken(secret, token string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, hmacKeyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// ExtractUsername returns the subject of a token after checking its
// signature. Expiry is deliberately not enforced: logout must be able to
// identify the caller from an already-expired access token, while forged
// tokens are still rejected because the signature check never runs later
// than the claim read.
func ExtractUsername(secret, token string) (string, error) {
	claims, err := parseSignedOnly(secret, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractUserID returns the userId claim under the same rules as
// ExtractUsername.
func ExtractUserID(secret, token string) (uint64, error) {
	claims, err := parseSignedOnly(secret, token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ValidateToken reports whether the token is correctly signed, unexpired
// and issued for the expected username.
func ValidateToken(secret, token, username string) bool {
	claims, err := VerifyToken(secret, token)
	return err == nil && claims.Subject == username
}

// parseSignedOnly verifies structure and signature but skips claim
// validation, so expired tokens parse successfully.
func parseSignedOnly(secret, token string) (*Claims, error) {
	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, hmacKeyFunc(secret),
		jwt.WithoutClaimsValidation()); err != nil {
		return nil, err
	}
	return claims, nil
}

// hmacKeyFunc supplies the signing key and pins the algorithm to HMAC so
// a token claiming a different method is rejected outright.
func hmacKeyFunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}
}

// RandomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data. Session identifiers are minted
// with it.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
