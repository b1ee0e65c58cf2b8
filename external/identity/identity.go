package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"io/ioutil"

	jwt "github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "identity"

	issuerPrefix = "https://securetoken.google.com/"
)

var (
	ErrMissingKeyID  = errors.New("token has no key id")
	ErrUnknownKeyID  = errors.New("token is signed by an unknown key")
	ErrInvalidIssuer = errors.New("token issuer mismatch")
	ErrInvalidAud    = errors.New("token audience mismatch")
	ErrNoSubject     = errors.New("token has no subject")
)

// Claims of a user ID token
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UID is the user id carried by the token subject
func (c *Claims) UID() string {
	return c.Subject
}

//go:generate mockgen -destination=../mocks/identity.go -package=mocks github.com/neighborly/neighborly-api/external/identity Verifier

// Verifier turns a bearer token into the claims of its user
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// KeySource resolves the public key a token was signed with
type KeySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type verifier struct {
	projectID string
	keys      KeySource
	parser    *jwt.Parser
}

// NewVerifier returns a Verifier of RS256 ID tokens issued for a project
func NewVerifier(projectID string, keys KeySource) Verifier {
	return &verifier{
		projectID: projectID,
		keys:      keys,
		parser:    &jwt.Parser{ValidMethods: []string{jwt.SigningMethodRS256.Alg()}},
	}
}

func (v *verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKeyID
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if !claims.VerifyAudience(v.projectID, true) {
		return nil, ErrInvalidAud
	}
	if !claims.VerifyIssuer(issuerPrefix+v.projectID, true) {
		return nil, ErrInvalidIssuer
	}
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}

	return claims, nil
}

// StaticKeySource serves a single public key for every key id
type StaticKeySource struct {
	key *rsa.PublicKey
}

func NewStaticKeySource(key *rsa.PublicKey) *StaticKeySource {
	return &StaticKeySource{key: key}
}

// LoadStaticKeySource reads a PEM encoded RSA public key
func LoadStaticKeySource(path string) (*StaticKeySource, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(data)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"file":   path,
	}).Info("static identity key loaded")

	return NewStaticKeySource(key), nil
}

func (s *StaticKeySource) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	return s.key, nil
}
