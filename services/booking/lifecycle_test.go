package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	bookingRepo "bookday/database/repository/booking"
	"bookday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings   map[string]*models.Booking
	takenSlots map[string]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:   make(map[string]*models.Booking),
		takenSlots: make(map[string]bool),
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, bk *models.Booking) error {
	if f.takenSlots[bk.SlotDate+"|"+bk.SlotTime] {
		return bookingRepo.ErrDuplicateSlot
	}
	cp := *bk
	f.bookings[bk.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if bk, ok := f.bookings[id]; ok {
		cp := *bk
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	bk, ok := f.bookings[id]
	if !ok {
		return nil
	}
	if st, ok := fields["status"].(string); ok {
		bk.Status = st
	}
	if payer, ok := fields["payer_identity"].(string); ok {
		bk.PayerIdentity = payer
	}
	return nil
}

func (f *fakeBookingRepo) FindPaidBySlot(_ context.Context, slotDate, slotTime string) (*models.Booking, error) {
	for _, bk := range f.bookings {
		if bk.SlotDate == slotDate && bk.SlotTime == slotTime && models.IsPaidStatus(bk.Status) {
			cp := *bk
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindPaidChain(_ context.Context, rootID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.bookings {
		if models.IsPaidStatus(bk.Status) && (bk.ID == rootID || bk.OriginalOrderID == rootID) {
			out = append(out, *bk)
		}
	}
	return out, nil
}

type fakeReferralRepo struct {
	byCode   map[string]*models.Referral
	credited map[string]int
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{
		byCode:   make(map[string]*models.Referral),
		credited: make(map[string]int),
	}
}

func (f *fakeReferralRepo) Create(_ context.Context, ref *models.Referral) error {
	f.byCode[strings.ToLower(ref.Code)] = ref
	return nil
}

func (f *fakeReferralRepo) GetByID(_ context.Context, id string) (*models.Referral, error) {
	for _, ref := range f.byCode {
		if ref.ID == id {
			return ref, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) GetByCode(_ context.Context, code string) (*models.Referral, error) {
	if ref, ok := f.byCode[strings.ToLower(code)]; ok {
		return ref, nil
	}
	return nil, nil
}

func (f *fakeReferralRepo) GetByEmail(_ context.Context, email string) (*models.Referral, error) {
	return nil, nil
}

func (f *fakeReferralRepo) GetByResetToken(_ context.Context, token string, now time.Time) (*models.Referral, error) {
	return nil, nil
}

func (f *fakeReferralRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (f *fakeReferralRepo) UnsetFields(_ context.Context, id string, fields ...string) error {
	return nil
}

func (f *fakeReferralRepo) IncrementSuccessfulReferrals(_ context.Context, id string) error {
	f.credited[id]++
	return nil
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		SlotDate:      "2026-09-14",
		SlotTime:      "14:30",
		SlotStart:     "2026-09-14T14:30:00Z",
		PackageTitle:  "Starter Session",
		PackagePrice:  "$100",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
	}
}

func TestCreateBooking_DefaultsToPending(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	bk, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, bk.ID)
	assert.Equal(t, models.StatusPending, bk.Status)
	assert.Equal(t, time.Date(2026, 9, 14, 14, 30, 0, 0, time.UTC), bk.SlotStart.UTC())
}

func TestCreateBooking_RejectsUnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	input := validInput()
	input.Status = "refunded"
	_, err := svc.CreateBooking(context.Background(), input)
	assert.ErrorAs(t, err, &InvalidStatusError{})
}

func TestCreateBooking_RejectsBadSlotStart(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	input := validInput()
	input.SlotStart = "next tuesday"
	_, err := svc.CreateBooking(context.Background(), input)
	assert.Error(t, err)
}

func TestCreateBooking_DuplicateSlotSurfacesAsSlotTaken(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.takenSlots["2026-09-14|14:30"] = true
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), validInput())
	var taken SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, "2026-09-14", taken.SlotDate)
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.StatusPending, models.StatusCaptured, true},
		{models.StatusPending, models.StatusFailed, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusCaptured, models.StatusCompleted, true},
		{models.StatusCaptured, models.StatusFailed, true},
		{models.StatusCaptured, models.StatusPending, false},
		{models.StatusCompleted, models.StatusFailed, true},
		{models.StatusCompleted, models.StatusCaptured, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusFailed, models.StatusCaptured, false},
		// Re-asserting the current status is a no-op.
		{models.StatusCaptured, models.StatusCaptured, true},
		{models.StatusFailed, models.StatusFailed, true},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			repo := newFakeBookingRepo()
			repo.bookings["b1"] = &models.Booking{ID: "b1", Status: tc.from}
			svc := &DefaultBookingService{Repo: repo}

			err := svc.UpdateStatus(context.Background(), "b1", tc.to, "")
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, repo.bookings["b1"].Status)
			} else {
				var invalid InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.from, invalid.From)
				assert.Equal(t, tc.from, repo.bookings["b1"].Status)
			}
		})
	}
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	err := svc.UpdateStatus(context.Background(), "missing", models.StatusCaptured, "")
	assert.ErrorAs(t, err, &BookingNotFoundError{})
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	err := svc.UpdateStatus(context.Background(), "b1", "charged-back", "")
	assert.ErrorAs(t, err, &InvalidStatusError{})
}

func TestUpdateStatus_RecordsPayerIdentity(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.StatusPending}
	svc := &DefaultBookingService{Repo: repo}

	require.NoError(t, svc.UpdateStatus(context.Background(), "b1", models.StatusCaptured, "payer@example.com"))
	assert.Equal(t, "payer@example.com", repo.bookings["b1"].PayerIdentity)
}

func TestUpdateStatus_CreditsReferralOnCapture(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.StatusPending, ReferralCode: "ADA10"}
	refs := newFakeReferralRepo()
	require.NoError(t, refs.Create(context.Background(), &models.Referral{ID: "r1", Code: "ada10"}))
	svc := &DefaultBookingService{Repo: repo, Referrals: refs}

	require.NoError(t, svc.UpdateStatus(context.Background(), "b1", models.StatusCaptured, ""))
	assert.Equal(t, 1, refs.credited["r1"])

	// Completion is not a second capture; the counter stays put.
	require.NoError(t, svc.UpdateStatus(context.Background(), "b1", models.StatusCompleted, ""))
	assert.Equal(t, 1, refs.credited["r1"])
}

func TestUpdateStatus_NoCreditWithoutReferralCode(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.StatusPending}
	refs := newFakeReferralRepo()
	svc := &DefaultBookingService{Repo: repo, Referrals: refs}

	require.NoError(t, svc.UpdateStatus(context.Background(), "b1", models.StatusCaptured, ""))
	assert.Empty(t, refs.credited)
}

func TestUpdateStatus_UnknownReferralCodeDoesNotFailTransition(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.StatusPending, ReferralCode: "ghost"}
	svc := &DefaultBookingService{Repo: repo, Referrals: newFakeReferralRepo()}

	assert.NoError(t, svc.UpdateStatus(context.Background(), "b1", models.StatusCaptured, ""))
	assert.Equal(t, models.StatusCaptured, repo.bookings["b1"].Status)
}

func TestGetBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.StatusCaptured}
	svc := &DefaultBookingService{Repo: repo}

	bk, err := svc.GetBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", bk.ID)

	_, err = svc.GetBooking(context.Background(), "missing")
	assert.ErrorAs(t, err, &BookingNotFoundError{})
}
