package repository

import (
	"sync"
	"time"

	"github.com/lightwind/auth-service/internal/model"
)

// LedgerTTL is how long a saved refresh token stays valid in the ledger.
// It is fixed and deliberately independent of the exp claim embedded in
// the token itself: for revocation the ledger's clock is authoritative.
const LedgerTTL = 7 * 24 * time.Hour

// TokenLedger tracks which refresh tokens are currently valid and for
// whom. The verbatim token string is the key, so possession of a
// correctly signed token is not enough — it must also have a live entry
// here. Logout removes every entry for a user at once (multi-device
// revoke). Expired entries are only treated as invalid on lookup; there
// is no background sweeper, so a long-running deployment should add
// periodic eviction before the map growth matters.
type TokenLedger struct {
	mu     sync.RWMutex
	tokens map[string]model.RefreshTokenRecord
	now    func() time.Time
}

func NewTokenLedger() *TokenLedger {
	return &TokenLedger{
		tokens: make(map[string]model.RefreshTokenRecord),
		now:    time.Now,
	}
}

// Save records a refresh token for the user with a fresh LedgerTTL deadline.
func (l *TokenLedger) Save(token string, userID uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = model.RefreshTokenRecord{
		Token:     token,
		UserID:    userID,
		ExpiresAt: l.now().Add(LedgerTTL),
	}
}

// IsValid reports whether an entry exists for exactly this token string,
// belongs to the given user and has not passed its ledger deadline.
func (l *TokenLedger) IsValid(token string, userID uint64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.tokens[token]
	return ok && rec.UserID == userID && !l.now().After(rec.ExpiresAt)
}

// InvalidateAllForUser removes every record belonging to the user,
// regardless of token value.
func (l *TokenLedger) InvalidateAllForUser(userID uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for tok, rec := range l.tokens {
		if rec.UserID == userID {
			delete(l.tokens, tok)
		}
	}
}
