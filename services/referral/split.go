package referral

import (
	"context"
	"fmt"

	"bookday/models"
	"bookday/utils"

	"go.uber.org/zap"
)

// UpdateSplit changes a creator's commission/discount split.
//
// Only the cap is enforced here: commission + discount must not exceed the
// creator's maximum. The unlock condition (5 successful referrals or the
// bypass flag) is advisory metadata for the edit UI and is returned in the
// SplitStatus rather than blocking the write.
func (s *DefaultReferralService) UpdateSplit(ctx context.Context, referralID string, commissionPercent, discountPercent float64) (*SplitStatus, error) {
	ref, err := s.Repo.GetByID(ctx, referralID)
	if err != nil {
		return nil, fmt.Errorf("failed to load referral: %w", err)
	}
	if ref == nil {
		return nil, ReferralNotFoundError{ReferralID: referralID}
	}

	requested := commissionPercent + discountPercent
	if requested > ref.MaxCommissionPercent {
		return nil, ExceedsMaxError{Requested: requested, Max: ref.MaxCommissionPercent}
	}

	fields := map[string]interface{}{
		"commission_percent": commissionPercent,
		"discount_percent":   discountPercent,
	}
	// A first successful edit while unlocked graduates the creator out of
	// the first-time state.
	clearedFirstTime := ref.IsFirstTime && ref.SplitUnlocked()
	if clearedFirstTime {
		fields["is_first_time"] = false
	}
	if err := s.Repo.UpdateFields(ctx, referralID, fields); err != nil {
		return nil, fmt.Errorf("failed to update split: %w", err)
	}

	utils.GetLogger().Info("referral split updated",
		zap.String("referralID", referralID),
		zap.Float64("commissionPercent", commissionPercent),
		zap.Float64("discountPercent", discountPercent),
	)

	return &SplitStatus{
		CommissionPercent:    commissionPercent,
		DiscountPercent:      discountPercent,
		MaxCommissionPercent: ref.MaxCommissionPercent,
		SuccessfulReferrals:  ref.SuccessfulReferrals,
		Unlocked:             ref.SplitUnlocked(),
		IsFirstTime:          ref.IsFirstTime && !clearedFirstTime,
	}, nil
}

// GetSplitStatus returns a creator's current economics and unlock state.
func (s *DefaultReferralService) GetSplitStatus(ctx context.Context, referralID string) (*SplitStatus, error) {
	ref, err := s.Repo.GetByID(ctx, referralID)
	if err != nil {
		return nil, fmt.Errorf("failed to load referral: %w", err)
	}
	if ref == nil {
		return nil, ReferralNotFoundError{ReferralID: referralID}
	}
	return splitStatusOf(ref), nil
}

func splitStatusOf(ref *models.Referral) *SplitStatus {
	return &SplitStatus{
		CommissionPercent:    ref.CommissionPercent,
		DiscountPercent:      ref.DiscountPercent,
		MaxCommissionPercent: ref.MaxCommissionPercent,
		SuccessfulReferrals:  ref.SuccessfulReferrals,
		Unlocked:             ref.SplitUnlocked(),
		IsFirstTime:          ref.IsFirstTime,
	}
}
