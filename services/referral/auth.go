package referral

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"bookday/models"
	"bookday/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// isHashedCredential reports whether the stored credential is a bcrypt hash.
// The explicit version tag is authoritative; prefix sniffing covers records
// written before the tag existed.
func isHashedCredential(ref *models.Referral) bool {
	if ref.CredentialVersion >= models.CredentialBcrypt {
		return true
	}
	return strings.HasPrefix(ref.Password, "$2")
}

// VerifyPassword checks a creator's password by referral code.
//
// Legacy records store the password in plaintext; a successful login against
// one transparently re-saves the credential as a bcrypt hash. Failure to
// persist that upgrade is logged and does not fail the login.
func (s *DefaultReferralService) VerifyPassword(ctx context.Context, code, password string) (*AuthResult, error) {
	ref, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load referral: %w", err)
	}
	if ref == nil {
		return nil, CodeNotFoundError{Code: code}
	}

	if isHashedCredential(ref) {
		if err := bcrypt.CompareHashAndPassword([]byte(ref.Password), []byte(password)); err != nil {
			return nil, WrongPasswordError{}
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(ref.Password), []byte(password)) != 1 {
			return nil, WrongPasswordError{}
		}
		if err := s.SetPassword(ctx, ref.ID, password); err != nil {
			utils.GetLogger().Warn("failed to upgrade legacy credential",
				zap.String("referralID", ref.ID),
				zap.Error(err),
			)
		}
	}

	return &AuthResult{ReferralID: ref.ID, Name: ref.Name}, nil
}

// SetPassword hashes the plaintext with bcrypt and persists it together with
// the credential version tag.
func (s *DefaultReferralService) SetPassword(ctx context.Context, referralID, plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fields := map[string]interface{}{
		"password":           string(hash),
		"credential_version": models.CredentialBcrypt,
	}
	if err := s.Repo.UpdateFields(ctx, referralID, fields); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}
