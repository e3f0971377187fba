package referral

import (
	"context"
	"strings"
	"time"

	"bookday/models"
)

type fakeReferralRepo struct {
	refs map[string]*models.Referral // by id
}

func newFakeReferralRepo(refs ...*models.Referral) *fakeReferralRepo {
	f := &fakeReferralRepo{refs: make(map[string]*models.Referral)}
	for _, ref := range refs {
		f.refs[ref.ID] = ref
	}
	return f
}

func (f *fakeReferralRepo) Create(_ context.Context, ref *models.Referral) error {
	f.refs[ref.ID] = ref
	return nil
}

func (f *fakeReferralRepo) GetByID(_ context.Context, id string) (*models.Referral, error) {
	if ref, ok := f.refs[id]; ok {
		cp := *ref
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReferralRepo) GetByCode(_ context.Context, code string) (*models.Referral, error) {
	for _, ref := range f.refs {
		if ref.Code == strings.ToLower(code) {
			cp := *ref
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) GetByEmail(_ context.Context, email string) (*models.Referral, error) {
	for _, ref := range f.refs {
		if ref.Email == email {
			cp := *ref
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) GetByResetToken(_ context.Context, token string, now time.Time) (*models.Referral, error) {
	for _, ref := range f.refs {
		if ref.ResetToken == token && ref.ResetTokenExpiry.After(now) {
			cp := *ref
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	ref, ok := f.refs[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "commission_percent":
			ref.CommissionPercent = v.(float64)
		case "discount_percent":
			ref.DiscountPercent = v.(float64)
		case "is_first_time":
			ref.IsFirstTime = v.(bool)
		case "password":
			ref.Password = v.(string)
		case "credential_version":
			ref.CredentialVersion = v.(int)
		case "reset_token":
			ref.ResetToken = v.(string)
		case "reset_token_expiry":
			ref.ResetTokenExpiry = v.(time.Time)
		}
	}
	return nil
}

func (f *fakeReferralRepo) UnsetFields(_ context.Context, id string, fields ...string) error {
	ref, ok := f.refs[id]
	if !ok {
		return nil
	}
	for _, k := range fields {
		switch k {
		case "reset_token":
			ref.ResetToken = ""
		case "reset_token_expiry":
			ref.ResetTokenExpiry = time.Time{}
		}
	}
	return nil
}

func (f *fakeReferralRepo) IncrementSuccessfulReferrals(_ context.Context, id string) error {
	if ref, ok := f.refs[id]; ok {
		ref.SuccessfulReferrals++
	}
	return nil
}

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
}

func newFakeCouponRepo(coupons ...*models.Coupon) *fakeCouponRepo {
	f := &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
	for _, c := range coupons {
		f.coupons[strings.ToLower(c.Code)] = c
	}
	return f
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *models.Coupon) error {
	f.coupons[strings.ToLower(coupon.Code)] = coupon
	return nil
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	if c, ok := f.coupons[strings.ToLower(code)]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}
