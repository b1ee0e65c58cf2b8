package identity

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultCertURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	defaultCertTTL = time.Hour
)

var (
	maxAgePattern = regexp.MustCompile(`max-age=(\d+)`)

	nowFunc = time.Now
)

// CertSource fetches the x509 signing certificates of the identity provider and keeps
// them until the max-age of the response runs out
type CertSource struct {
	client *resty.Client
	url    string

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

func NewCertSource(client *resty.Client, url string) *CertSource {
	if url == "" {
		url = DefaultCertURL
	}
	return &CertSource{
		client: client,
		url:    url,
	}
}

func (s *CertSource) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	s.mu.RLock()
	key, ok := s.keys[kid]
	fresh := nowFunc().Before(s.expiresAt)
	s.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.keys[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKeyID
}

func (s *CertSource) refresh(ctx context.Context) error {
	var certs map[string]string
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&certs).
		Get(s.url)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("fetch signing certs: unexpected status %d", resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"kid":    kid,
				"error":  err,
			}).Warn("skip malformed signing cert")
			continue
		}
		keys[kid] = key
	}

	s.mu.Lock()
	s.keys = keys
	s.expiresAt = nowFunc().Add(cacheTTL(resp.Header().Get("Cache-Control")))
	s.mu.Unlock()

	return nil
}

func cacheTTL(cacheControl string) time.Duration {
	m := maxAgePattern.FindStringSubmatch(cacheControl)
	if len(m) != 2 {
		return defaultCertTTL
	}
	seconds, err := strconv.Atoi(m[1])
	if err != nil || seconds <= 0 {
		return defaultCertTTL
	}
	return time.Duration(seconds) * time.Second
}
