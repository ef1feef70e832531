package settings

import (
	"errors"
	"sync"

	"github.com/asdine/storm/v3"
	"github.com/dchest/uniuri"
	"github.com/quansoft/sms-gateway/dao"
)

const (
	bucket   = "settings"
	portKey  = "server_port"
	tokenKey = "auth_token"
)

const DefaultPort = 8080

// tokenLen gives well over 128 bits of entropy with uniuri's 62-char alphabet
const tokenLen = 32

// Provider stores the gateway's port and auth token in a KV bucket of the
// same bolt file the message store uses.
type Provider interface {
	//GetPort returns the configured listen port, DefaultPort if unset
	GetPort() (int, error)
	//SetPort stores the listen port; it takes effect on next start
	SetPort(port int) error
	//GetAuthToken returns the auth token, minting and persisting one on first access
	GetAuthToken() (string, error)
	//RegenerateToken overwrites the auth token and returns the fresh value
	RegenerateToken() (string, error)
}

func NewProvider(db dao.Db) Provider {
	return &provider{db: db}
}

type provider struct {
	db dao.Db
	mu sync.Mutex
}

func (p *provider) GetPort() (int, error) {
	var port int
	err := p.db.Get(bucket, portKey, &port)
	if errors.Is(err, storm.ErrNotFound) {
		return DefaultPort, nil
	}
	if err != nil {
		return 0, err
	}
	return port, nil
}

func (p *provider) SetPort(port int) error {
	return p.db.Set(bucket, portKey, port)
}

func (p *provider) GetAuthToken() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var token string
	err := p.db.Get(bucket, tokenKey, &token)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, storm.ErrNotFound) {
		return "", err
	}

	token = uniuri.NewLen(tokenLen)
	if err := p.db.Set(bucket, tokenKey, token); err != nil {
		return "", err
	}
	return token, nil
}

func (p *provider) RegenerateToken() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	token := uniuri.NewLen(tokenLen)
	if err := p.db.Set(bucket, tokenKey, token); err != nil {
		return "", err
	}
	return token, nil
}
