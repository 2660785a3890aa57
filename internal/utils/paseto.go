package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
// Die Tokens stellt der externe Identity-Provider aus; dieser Dienst verifiziert sie nur.
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
	audience     string
}

// NewPasetoMaker creates instance with existing key
func NewPasetoMaker(keyHex, audience string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
		audience:     audience,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel (hex).
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// IdentityClaims sind die Angaben, die der Identity-Provider pro Benutzer mitgibt.
type IdentityClaims struct {
	UserID       string
	Role         string
	DepartmentID string
	Expiration   time.Time
}

// CreateToken erstellt ein lokales V4 Token (encrypted) im Format des Identity-Providers.
func (m *PasetoMaker) CreateToken(claims IdentityClaims, duration time.Duration) string {
	token := paseto.NewToken()

	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(duration))
	token.SetAudience(m.audience)
	token.SetSubject(claims.UserID)

	token.SetString("role", claims.Role)
	token.SetString("department_id", claims.DepartmentID)

	return token.V4Encrypt(m.symmetricKey, nil)
}

// VerifyToken decrypts und überprüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*IdentityClaims, error) {
	parser := paseto.NewParser()

	// Validierungsregeln hinzufügen
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience(m.audience))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsedToken, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("Token decryption/verification failed: %w", err)
	}

	userID, err := parsedToken.GetSubject()
	if err != nil || userID == "" {
		return nil, fmt.Errorf("Token ohne Subject")
	}
	role, err := parsedToken.GetString("role")
	if err != nil {
		return nil, fmt.Errorf("Token ohne Rolle: %w", err)
	}
	departmentID, _ := parsedToken.GetString("department_id")
	exp, _ := parsedToken.GetExpiration()

	return &IdentityClaims{
		UserID:       userID,
		Role:         role,
		DepartmentID: departmentID,
		Expiration:   exp,
	}, nil
}
