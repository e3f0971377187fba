package referral

import (
	"context"
	"strings"
	"testing"
	"time"

	"bookday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword_HashedCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := newFakeReferralRepo(&models.Referral{
		ID:                "r1",
		Code:              "ada10",
		Name:              "Ada",
		Password:          string(hash),
		CredentialVersion: models.CredentialBcrypt,
	})
	svc := &DefaultReferralService{Repo: repo}

	res, err := svc.VerifyPassword(context.Background(), "ADA10", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ReferralID)
	assert.Equal(t, "Ada", res.Name)

	_, err = svc.VerifyPassword(context.Background(), "ada10", "wrong")
	assert.ErrorAs(t, err, &WrongPasswordError{})
}

func TestVerifyPassword_UnknownCode(t *testing.T) {
	svc := &DefaultReferralService{Repo: newFakeReferralRepo()}

	_, err := svc.VerifyPassword(context.Background(), "nobody", "pw")
	assert.ErrorAs(t, err, &CodeNotFoundError{})
}

func TestVerifyPassword_LegacyPlaintextUpgradesOnLogin(t *testing.T) {
	repo := newFakeReferralRepo(&models.Referral{
		ID:       "r1",
		Code:     "ada10",
		Password: "s3cret", // stored before hashing existed
	})
	svc := &DefaultReferralService{Repo: repo}

	_, err := svc.VerifyPassword(context.Background(), "ada10", "s3cret")
	require.NoError(t, err)

	// The stored credential is now a tagged bcrypt hash.
	stored := repo.refs["r1"]
	assert.Equal(t, models.CredentialBcrypt, stored.CredentialVersion)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))

	// And the same password keeps working against the upgraded record.
	_, err = svc.VerifyPassword(context.Background(), "ada10", "s3cret")
	assert.NoError(t, err)
}

func TestVerifyPassword_LegacyPlaintextWrongPassword(t *testing.T) {
	repo := newFakeReferralRepo(&models.Referral{
		ID:       "r1",
		Code:     "ada10",
		Password: "s3cret",
	})
	svc := &DefaultReferralService{Repo: repo}

	_, err := svc.VerifyPassword(context.Background(), "ada10", "guess")
	assert.ErrorAs(t, err, &WrongPasswordError{})
	// A failed login never rewrites the credential.
	assert.Equal(t, "s3cret", repo.refs["r1"].Password)
}

func TestVerifyPassword_UntaggedHashDetectedByPrefix(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := newFakeReferralRepo(&models.Referral{
		ID:       "r1",
		Code:     "ada10",
		Password: string(hash), // hashed record written before the version tag
	})
	svc := &DefaultReferralService{Repo: repo}

	_, err = svc.VerifyPassword(context.Background(), "ada10", "s3cret")
	assert.NoError(t, err)
	// The hash must not be treated as a plaintext password.
	_, err = svc.VerifyPassword(context.Background(), "ada10", string(hash))
	assert.ErrorAs(t, err, &WrongPasswordError{})
}

func TestRequestReset_StoresTokenAndMails(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeReferralRepo(&models.Referral{
		ID:    "r1",
		Code:  "ada10",
		Name:  "Ada",
		Email: "ada@example.com",
	})
	mailer := &fakeMailer{}
	svc := &DefaultReferralService{
		Repo:   repo,
		Mailer: mailer,
		Now:    func() time.Time { return now },
	}

	require.NoError(t, svc.RequestReset(context.Background(), "ada@example.com"))

	stored := repo.refs["r1"]
	assert.Len(t, stored.ResetToken, 64) // 256 bits, hex encoded
	assert.Equal(t, now.Add(time.Hour), stored.ResetTokenExpiry)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, stored.ResetToken)
}

func TestRequestReset_UnknownEmailIsSilent(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &DefaultReferralService{Repo: newFakeReferralRepo(), Mailer: mailer}

	// No error and no mail, so callers cannot probe for registered emails.
	assert.NoError(t, svc.RequestReset(context.Background(), "nobody@example.com"))
	assert.Empty(t, mailer.sent)
}

func TestCompleteReset_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeReferralRepo(&models.Referral{
		ID:               "r1",
		Code:             "ada10",
		Password:         "old-plaintext",
		ResetToken:       "tok123",
		ResetTokenExpiry: now.Add(30 * time.Minute),
	})
	svc := &DefaultReferralService{
		Repo: repo,
		Now:  func() time.Time { return now },
	}

	require.NoError(t, svc.CompleteReset(context.Background(), "tok123", "new-secret"))

	stored := repo.refs["r1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new-secret")))
	assert.Empty(t, stored.ResetToken)
	assert.True(t, stored.ResetTokenExpiry.IsZero())

	// The token is single use.
	assert.ErrorAs(t, svc.CompleteReset(context.Background(), "tok123", "again"), &InvalidResetTokenError{})
}

func TestCompleteReset_ExpiredOrUnknownToken(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeReferralRepo(&models.Referral{
		ID:               "r1",
		Code:             "ada10",
		ResetToken:       "tok123",
		ResetTokenExpiry: now.Add(-time.Minute),
	})
	svc := &DefaultReferralService{
		Repo: repo,
		Now:  func() time.Time { return now },
	}

	assert.ErrorAs(t, svc.CompleteReset(context.Background(), "tok123", "pw"), &InvalidResetTokenError{})
	assert.ErrorAs(t, svc.CompleteReset(context.Background(), "unknown", "pw"), &InvalidResetTokenError{})
	assert.ErrorAs(t, svc.CompleteReset(context.Background(), "", "pw"), &InvalidResetTokenError{})
}
