package referral

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"bookday/config"
	"bookday/utils"

	"go.uber.org/zap"
)

const resetTokenTTL = time.Hour

// RequestReset issues a password-reset token for the creator registered under
// the given email and mails it out-of-band. The operation always reports
// success so callers cannot probe which emails are registered.
func (s *DefaultReferralService) RequestReset(ctx context.Context, email string) error {
	ref, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("RequestReset: failed to fetch referral", zap.Error(err))
		return nil
	}
	if ref == nil {
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		utils.GetLogger().Error("RequestReset: failed to generate token", zap.Error(err))
		return nil
	}
	fields := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": s.now().Add(resetTokenTTL),
	}
	if err := s.Repo.UpdateFields(ctx, ref.ID, fields); err != nil {
		utils.GetLogger().Error("RequestReset: failed to store token",
			zap.String("referralID", ref.ID),
			zap.Error(err),
		)
		return nil
	}

	if s.Mailer != nil {
		link := fmt.Sprintf("%s/creator/reset-password?token=%s", config.AppConfig.PublicURL, token)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Use the link below to reset your creator password. It expires in one hour.</p><p><a href=%q>Reset your password</a></p>",
			ref.Name, link,
		)
		if err := s.Mailer.Send(ctx, ref.Email, "Reset your password", body); err != nil {
			// Delivery is fire-and-forget; the token stays valid either way.
			utils.GetLogger().Error("RequestReset: failed to enqueue email",
				zap.String("referralID", ref.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// newResetToken returns 256 bits of randomness, hex encoded.
func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CompleteReset consumes an unexpired reset token: the new password is hashed
// and stored and the token fields are removed from the document.
func (s *DefaultReferralService) CompleteReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return InvalidResetTokenError{}
	}
	ref, err := s.Repo.GetByResetToken(ctx, token, s.now())
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if ref == nil {
		return InvalidResetTokenError{}
	}

	if err := s.SetPassword(ctx, ref.ID, newPassword); err != nil {
		return err
	}
	if err := s.Repo.UnsetFields(ctx, ref.ID, "reset_token", "reset_token_expiry"); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}

	utils.GetLogger().Info("password reset completed", zap.String("referralID", ref.ID))
	return nil
}
