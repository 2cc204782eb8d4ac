package persist

import (
	"strings"
	"time"

	"github.com/lunaria-games/mmoserver/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// TryLogin authenticates an account, auto-registering unknown names with
// the supplied credentials. It deliberately cannot tell "unknown user"
// from "new user": this game's signup flow is anonymous.
//
// Success requires a known account to be unbanned with a matching
// password. Blank credentials and rate-limited attempts fail outright.
func (s *Store) TryLogin(account, password string) (bool, error) {
	if strings.TrimSpace(account) == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}
	if !s.loginLimiter(account).Allow() {
		s.logger.Warn("login attempt rate limited", zap.String("account", account))
		return false, nil
	}

	var rows []model.Account
	err := s.Select(s.db, &rows,
		"SELECT * FROM accounts WHERE name = @name",
		map[string]interface{}{"name": account})
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()

	if len(rows) > 0 {
		acc := rows[0]
		if acc.Banned {
			return false, nil
		}
		if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
			return false, nil
		}
		_, err := s.Exec(s.db,
			"UPDATE accounts SET last_login = @now WHERE name = @name",
			map[string]interface{}{"now": now, "name": account})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	// Account doesn't exist yet: create it with these credentials.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return false, err
	}
	_, err = s.Exec(s.db,
		"INSERT INTO accounts (name, password_hash, created, last_login, banned) VALUES (@name, @hash, @now, @now, 0)",
		map[string]interface{}{"name": account, "hash": string(hash), "now": now})
	if err != nil {
		return false, err
	}
	s.logger.Info("account auto-registered", zap.String("account", account))
	return true, nil
}

// maxLoginLimiters bounds the per-account limiter map. Attempts for
// unknown names allocate entries too, so without a cap the map is an
// open-ended memory sink.
const maxLoginLimiters = 4096

// loginLimiter returns the per-account attempt limiter, creating it on
// first use. A map at its cap is reset wholesale; every rate window
// restarts.
func (s *Store) loginLimiter(account string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	lim, ok := s.limiters[account]
	if !ok {
		if len(s.limiters) >= maxLoginLimiters {
			s.logger.Warn("login limiter map reset", zap.Int("entries", len(s.limiters)))
			s.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Every(s.cfg.LoginRatePeriod), s.cfg.LoginRateBurst)
		s.limiters[account] = lim
	}
	return lim
}
