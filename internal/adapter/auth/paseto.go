package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/lunchorder/internal/adapter/config"
	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 12 * time.Hour

// PasetoToken issues operator tokens. The key lives only for the process
// lifetime, so tokens do not survive a restart.
type PasetoToken struct {
	parser       *paseto.Parser
	key          *paseto.V4SymmetricKey
	passwordHash []byte
	ttl          time.Duration
}

func New(conf *config.Operator) (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	ttl := conf.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	s := PasetoToken{
		parser:       &parser,
		key:          &key,
		passwordHash: []byte(conf.PasswordHash),
		ttl:          ttl,
	}

	return &s, nil
}

// CheckPassword fails for every password when no hash is configured.
func (p *PasetoToken) CheckPassword(password string) error {
	if len(p.passwordHash) == 0 {
		return domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (p *PasetoToken) CreateToken(role string) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{Role: role}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
