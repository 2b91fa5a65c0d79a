package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sharma2rachit/zenith-rental/model"
	"github.com/sharma2rachit/zenith-rental/util/database"
)

func newTestRepo(t *testing.T) Repo {
	t.Helper()
	db, err := database.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

func sampleRecord(id string) *model.BookingRecord {
	return &model.BookingRecord{
		ID:     id,
		UserID: 7,
		Vehicle: model.Vehicle{
			ID: 1, Name: "Toyota Camry", Category: "Mid-size", DailyPrice: 45,
			Location: "New York", Available: true,
		},
		Customer: model.CustomerDetails{FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		SearchParams: model.SearchParams{
			Location: "New York", PickupDate: "2024-01-01", ReturnDate: "2024-01-04",
		},
		Extras: map[model.ExtraKey]bool{
			model.ExtraGPS:       true,
			model.ExtraInsurance: true,
		},
		RentalDays:    3,
		TotalPrice:    240,
		PaymentMethod: model.PayCash,
		PaymentStatus: model.PaymentPending,
		Status:        model.BookingConfirmed,
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	rec := sampleRecord("RZROUND0001")
	require.NoError(t, r.Put(ctx, rec))

	got, err := r.Get(ctx, "RZROUND0001")
	require.NoError(t, err)
	// status, total and extras must survive storage untouched
	require.Equal(t, rec.Status, got.Status)
	require.Equal(t, rec.TotalPrice, got.TotalPrice)
	require.Equal(t, rec.Extras, got.Extras)
	require.Equal(t, rec.Vehicle, got.Vehicle)
	require.Equal(t, rec.Customer, got.Customer)
	require.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestGet_Unknown(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Get(context.Background(), "RZMISSING")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_AppliesMutatorAtomically(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sampleRecord("RZUPD000001")))

	got, err := r.Update(ctx, "RZUPD000001", func(rec *model.BookingRecord) error {
		rec.Status = model.BookingCancelled
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, got.Status)

	stored, err := r.Get(ctx, "RZUPD000001")
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, stored.Status)
}

func TestUpdate_MutatorErrorLeavesRecordUntouched(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sampleRecord("RZUPD000002")))

	boom := errors.New("refused")
	_, err := r.Update(ctx, "RZUPD000002", func(rec *model.BookingRecord) error {
		rec.Status = model.BookingCancelled
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := r.Get(ctx, "RZUPD000002")
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, stored.Status)
}

func TestUpdate_Unknown(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Update(context.Background(), "RZMISSING", func(rec *model.BookingRecord) error {
		return nil
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sampleRecord("RZLIST00001")))
	require.NoError(t, r.Put(ctx, sampleRecord("RZLIST00002")))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
