package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sharma2rachit/zenith-rental/model"
	bookingrepo "github.com/sharma2rachit/zenith-rental/repository/booking"
	"github.com/sharma2rachit/zenith-rental/repository/payment"
	vehiclerepo "github.com/sharma2rachit/zenith-rental/repository/vehicle"
)

// storeMock is an in-memory stand-in for the badger-backed record store.
type storeMock struct {
	mu      sync.Mutex
	recs    map[string]model.BookingRecord
	failPut bool
}

var _ bookingrepo.Repo = (*storeMock)(nil)

func newStoreMock() *storeMock {
	return &storeMock{recs: map[string]model.BookingRecord{}}
}

func (m *storeMock) Put(ctx context.Context, rec *model.BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("disk full")
	}
	m.recs[rec.ID] = *rec
	return nil
}

func (m *storeMock) Get(ctx context.Context, id string) (*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, bookingrepo.ErrNotFound
	}
	return &rec, nil
}

func (m *storeMock) Update(ctx context.Context, id string, mutate func(*model.BookingRecord) error) (*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, bookingrepo.ErrNotFound
	}
	if err := mutate(&rec); err != nil {
		return nil, err
	}
	m.recs[id] = rec
	return &rec, nil
}

func (m *storeMock) List(ctx context.Context) ([]model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.BookingRecord, 0, len(m.recs))
	for _, rec := range m.recs {
		out = append(out, rec)
	}
	return out, nil
}

type idStub struct{ id int64 }

func (s idStub) CurrentIdentity(ctx context.Context) (int64, bool) { return s.id, s.id > 0 }

func newTestService(store bookingrepo.Repo, uid int64) Service {
	return New(store, vehiclerepo.New(), payment.NewMock(), idStub{id: uid})
}

func str(s string) *string { return &s }

// buildDraft walks a session through the usual flow: Camry (id 1, 45/day),
// gps+insurance, Jan 1 to Jan 4.
func buildDraft(t *testing.T, svc Service, session string) {
	t.Helper()
	ctx := context.Background()

	svc.UpdateSearchParams(ctx, session, SearchParamsUpdate{
		Location:   str("New York"),
		PickupDate: str("2024-01-01"),
		ReturnDate: str("2024-01-04"),
	})
	_, err := svc.SelectVehicle(ctx, session, 1)
	require.NoError(t, err)
	svc.UpdateExtras(ctx, session, map[model.ExtraKey]bool{
		model.ExtraGPS:       true,
		model.ExtraInsurance: true,
	})
	svc.UpdateCustomerDetails(ctx, session, CustomerUpdate{
		FirstName: str("John"), LastName: str("Doe"), Email: str("john@example.com"),
	})
}

func TestFinalize_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	buildDraft(t, svc, "s1")

	quote, err := svc.Quote(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 3, quote.RentalDays)
	require.Equal(t, float64(240), quote.TotalPrice) // (45+10+25)*3

	rec, err := svc.Finalize(ctx, "s1", model.PayCash, nil)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, rec.Status)
	require.Equal(t, model.PaymentPending, rec.PaymentStatus)
	require.Equal(t, float64(240), rec.TotalPrice)
	require.Equal(t, 3, rec.RentalDays)
	require.Equal(t, int64(7), rec.UserID)
	require.Regexp(t, `^RZ[0-9A-F]{9}$`, rec.ID)
	require.False(t, rec.CreatedAt.IsZero())

	// draft reset after finalize
	d := svc.Draft(ctx, "s1")
	require.Nil(t, d.SelectedVehicle)
	require.Equal(t, 1, d.RentalDays)
	require.Equal(t, float64(0), d.TotalPrice)

	// cancel, then any further operation refuses
	cancelled, err := svc.Cancel(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, cancelled.Status)

	_, err = svc.Modify(ctx, rec.ID, ModifyReq{Extras: map[model.ExtraKey]bool{model.ExtraGPS: false}})
	require.Error(t, err)
	require.Equal(t, ErrInvalidTransition, Code(err))
}

func TestFinalize_RequiresIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStoreMock(), 0) // anonymous

	buildDraft(t, svc, "s1")

	_, err := svc.Finalize(ctx, "s1", model.PayCash, nil)
	require.Error(t, err)
	require.Equal(t, ErrAuthRequired, Code(err))

	// the draft survives so the user can sign in and retry without re-entry
	d := svc.Draft(ctx, "s1")
	require.NotNil(t, d.SelectedVehicle)
	require.Equal(t, int64(1), d.SelectedVehicle.ID)
	require.True(t, d.Extras[model.ExtraGPS])
	require.Equal(t, "John", d.CustomerDetails.FirstName)
}

func TestFinalize_MissingVehicle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStoreMock(), 7)

	_, err := svc.Finalize(ctx, "empty", model.PayCash, nil)
	require.Error(t, err)
	require.Equal(t, ErrMissingVehicle, Code(err))
}

func TestFinalize_PersistFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	store.failPut = true
	svc := newTestService(store, 7)

	buildDraft(t, svc, "s1")

	_, err := svc.Finalize(ctx, "s1", model.PayCash, nil)
	require.Error(t, err)
	require.Equal(t, ErrPersistFailed, Code(err))

	// nothing was written and the draft is intact
	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
	d := svc.Draft(ctx, "s1")
	require.NotNil(t, d.SelectedVehicle)
}

func TestFinalize_CardPaymentCompletes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStoreMock(), 7)

	buildDraft(t, svc, "s1")

	rec, err := svc.Finalize(ctx, "s1", model.PayCard, &CardDetails{
		Number: "4111111111111111", ExpiryDate: "12/27", CVV: "123", CardholderName: "John Doe",
	})
	require.NoError(t, err)
	require.Equal(t, model.PaymentCompleted, rec.PaymentStatus)
}

func TestFinalize_CardDeclinedWithoutNumber(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	buildDraft(t, svc, "s1")

	_, err := svc.Finalize(ctx, "s1", model.PayCard, nil)
	require.Error(t, err)
	require.Equal(t, ErrPaymentDeclined, Code(err))

	all, _ := store.List(ctx)
	require.Empty(t, all)
}

func seedRecord(t *testing.T, store *storeMock, rec model.BookingRecord) {
	t.Helper()
	require.NoError(t, store.Put(context.Background(), &rec))
}

func confirmedRecord(id string, uid int64, price float64, days int) model.BookingRecord {
	return model.BookingRecord{
		ID:     id,
		UserID: uid,
		Vehicle: model.Vehicle{
			ID: 1, Name: "Toyota Camry", DailyPrice: price, Available: true,
		},
		Extras:        model.DefaultExtras(),
		RentalDays:    days,
		TotalPrice:    price * float64(days),
		PaymentMethod: model.PayCash,
		PaymentStatus: model.PaymentPending,
		Status:        model.BookingConfirmed,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestCancel_IsTerminal(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	seedRecord(t, store, confirmedRecord("RZTEST00001", 7, 45, 1))

	first, err := svc.Cancel(ctx, "RZTEST00001")
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, first.Status)

	_, err = svc.Cancel(ctx, "RZTEST00001")
	require.Error(t, err)
	require.Equal(t, ErrInvalidTransition, Code(err))

	// the stored record is not corrupted by the rejected second cancel
	got, err := svc.Get(ctx, "RZTEST00001")
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, got.Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newStoreMock(), 7)

	_, err := svc.Cancel(context.Background(), "RZMISSING01")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestModify_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	// dailyPrice=45, gps on, one day; stored total is deliberately stale
	rec := confirmedRecord("RZTEST00002", 7, 45, 1)
	rec.Extras[model.ExtraGPS] = true
	rec.SearchParams = model.SearchParams{PickupDate: "2024-03-01", ReturnDate: "2024-03-02"}
	rec.TotalPrice = 100
	seedRecord(t, store, rec)

	got, err := svc.Modify(ctx, "RZTEST00002", ModifyReq{
		Search: SearchParamsUpdate{ReturnDate: str("2024-03-04")},
	})
	require.NoError(t, err)
	require.Equal(t, 3, got.RentalDays)
	// (45+10)*3, not 55+stale
	require.Equal(t, float64(165), got.TotalPrice)
	require.NotNil(t, got.ModifiedAt)
}

func TestModify_ExtrasOnlyStillRecomputes(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	rec := confirmedRecord("RZTEST00003", 7, 50, 2)
	rec.SearchParams = model.SearchParams{PickupDate: "2024-03-01", ReturnDate: "2024-03-03"}
	rec.TotalPrice = 999 // stale on purpose
	seedRecord(t, store, rec)

	got, err := svc.Modify(ctx, "RZTEST00003", ModifyReq{
		Extras: map[model.ExtraKey]bool{model.ExtraGPS: true},
	})
	require.NoError(t, err)
	require.Equal(t, 2, got.RentalDays)
	require.Equal(t, float64(120), got.TotalPrice) // (50+10)*2
	require.True(t, got.Extras[model.ExtraGPS])
}

func TestModify_NotFound(t *testing.T) {
	svc := newTestService(newStoreMock(), 7)

	_, err := svc.Modify(context.Background(), "RZMISSING02", ModifyReq{})
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestComplete_Transition(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	seedRecord(t, store, confirmedRecord("RZTEST00004", 7, 45, 1))

	got, err := svc.Complete(ctx, "RZTEST00004")
	require.NoError(t, err)
	require.Equal(t, model.BookingCompleted, got.Status)

	// completed is terminal
	_, err = svc.Cancel(ctx, "RZTEST00004")
	require.Error(t, err)
	require.Equal(t, ErrInvalidTransition, Code(err))
}

func TestSelectVehicle_PreservesDraftFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStoreMock(), 7)

	svc.UpdateExtras(ctx, "s1", map[model.ExtraKey]bool{model.ExtraChildSeat: true})
	svc.UpdateCustomerDetails(ctx, "s1", CustomerUpdate{FirstName: str("Jane")})

	_, err := svc.SelectVehicle(ctx, "s1", 1)
	require.NoError(t, err)
	// re-picking a different car keeps everything the user already entered
	d, err := svc.SelectVehicle(ctx, "s1", 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), d.SelectedVehicle.ID)
	require.True(t, d.Extras[model.ExtraChildSeat])
	require.Equal(t, "Jane", d.CustomerDetails.FirstName)
}

func TestSelectVehicle_UnknownVehicle(t *testing.T) {
	svc := newTestService(newStoreMock(), 7)

	_, err := svc.SelectVehicle(context.Background(), "s1", 999)
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestQuote_MissingVehicle(t *testing.T) {
	svc := newTestService(newStoreMock(), 7)

	_, err := svc.Quote(context.Background(), "s1")
	require.Error(t, err)
	require.Equal(t, ErrMissingVehicle, Code(err))
}

func TestListForUser_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	older := confirmedRecord("RZTEST00005", 7, 45, 1)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := confirmedRecord("RZTEST00006", 7, 45, 1)
	other := confirmedRecord("RZTEST00007", 9, 45, 1)
	seedRecord(t, store, older)
	seedRecord(t, store, newer)
	seedRecord(t, store, other)

	rows, err := svc.ListForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "RZTEST00006", rows[0].ID)
	require.Equal(t, "RZTEST00005", rows[1].ID)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	svc := newTestService(store, 7)

	seedRecord(t, store, confirmedRecord("RZTEST00008", 7, 45, 2)) // 90
	cancelledRec := confirmedRecord("RZTEST00009", 7, 45, 1)
	cancelledRec.Status = model.BookingCancelled
	seedRecord(t, store, cancelledRec)
	completedRec := confirmedRecord("RZTEST00010", 9, 50, 2) // 100
	completedRec.Status = model.BookingCompleted
	seedRecord(t, store, completedRec)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, sum.Total)
	require.Equal(t, 1, sum.Confirmed)
	require.Equal(t, 1, sum.Cancelled)
	require.Equal(t, 1, sum.Completed)
	require.Equal(t, float64(190), sum.Revenue) // cancelled bookings earn nothing
}
