package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sharma2rachit/zenith-rental/model"
	bookingrepo "github.com/sharma2rachit/zenith-rental/repository/booking"
	"github.com/sharma2rachit/zenith-rental/repository/payment"
	vehiclerepo "github.com/sharma2rachit/zenith-rental/repository/vehicle"
)

// IdentityProvider resolves the caller behind a request. Finalize refuses to
// run without an identity; everything else in the flow is anonymous.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (int64, bool)
}

// SearchParamsUpdate carries only the fields the caller wants to change.
type SearchParamsUpdate struct {
	Location   *string
	PickupDate *string
	PickupTime *string
	ReturnDate *string
	ReturnTime *string
}

type CustomerUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	LicenseNumber *string
}

type CardDetails struct {
	Number         string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// ModifyReq is the post-confirmation change set: dates/location and extras.
// Vehicle and customer are fixed once a booking is finalized.
type ModifyReq struct {
	Search SearchParamsUpdate
	Extras map[model.ExtraKey]bool
}

type Summary struct {
	Total     int     `json:"total"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

type Service interface {
	// Draft management. Drafts are keyed by session and owned by the engine;
	// every call returns a snapshot with rental days and total refreshed.
	Draft(ctx context.Context, session string) *model.BookingDraft
	UpdateSearchParams(ctx context.Context, session string, upd SearchParamsUpdate) *model.BookingDraft
	SelectVehicle(ctx context.Context, session string, vehicleID int64) (*model.BookingDraft, error)
	UpdateCustomerDetails(ctx context.Context, session string, upd CustomerUpdate) *model.BookingDraft
	UpdateExtras(ctx context.Context, session string, extras map[model.ExtraKey]bool) *model.BookingDraft
	ResetDraft(ctx context.Context, session string)
	Quote(ctx context.Context, session string) (*model.BookingDraft, error)

	// Lifecycle over persisted records.
	Finalize(ctx context.Context, session string, method model.PaymentMethod, card *CardDetails) (*model.BookingRecord, error)
	Get(ctx context.Context, id string) (*model.BookingRecord, error)
	ListForUser(ctx context.Context, userID int64) ([]model.BookingRecord, error)
	ListAll(ctx context.Context) ([]model.BookingRecord, error)
	Cancel(ctx context.Context, id string) (*model.BookingRecord, error)
	Modify(ctx context.Context, id string, req ModifyReq) (*model.BookingRecord, error)
	Complete(ctx context.Context, id string) (*model.BookingRecord, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	store   bookingrepo.Repo
	catalog vehiclerepo.Repo
	proc    payment.Processor
	ids     IdentityProvider

	mu     sync.Mutex
	drafts map[string]*model.BookingDraft
}

func New(store bookingrepo.Repo, catalog vehiclerepo.Repo, proc payment.Processor, ids IdentityProvider) Service {
	return &service{
		store:   store,
		catalog: catalog,
		proc:    proc,
		ids:     ids,
		drafts:  make(map[string]*model.BookingDraft),
	}
}

// ----- drafts -----

func (s *service) draftLocked(session string) *model.BookingDraft {
	d, ok := s.drafts[session]
	if !ok {
		d = model.NewBookingDraft()
		s.drafts[session] = d
	}
	return d
}

// refreshTotal recomputes the cached projection. The draft total is never
// read back as an input; it only exists so the UI can show a running price.
func refreshTotal(d *model.BookingDraft) {
	d.RentalDays = RentalDays(d.SearchParams.PickupDate, d.SearchParams.ReturnDate)
	if d.SelectedVehicle == nil {
		d.TotalPrice = 0
		return
	}
	total, err := ComputeTotal(d.SelectedVehicle, d.RentalDays, d.Extras)
	if err != nil {
		return
	}
	d.TotalPrice = total
}

func cloneDraft(d *model.BookingDraft) *model.BookingDraft {
	out := *d
	out.Extras = copyExtras(d.Extras)
	if d.SelectedVehicle != nil {
		v := *d.SelectedVehicle
		out.SelectedVehicle = &v
	}
	return &out
}

func copyExtras(in map[model.ExtraKey]bool) map[model.ExtraKey]bool {
	out := make(map[model.ExtraKey]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *service) Draft(ctx context.Context, session string) *model.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	refreshTotal(d)
	return cloneDraft(d)
}

func (s *service) UpdateSearchParams(ctx context.Context, session string, upd SearchParamsUpdate) *model.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	applySearchUpdate(&d.SearchParams, upd)
	refreshTotal(d)
	return cloneDraft(d)
}

func applySearchUpdate(p *model.SearchParams, upd SearchParamsUpdate) {
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.PickupDate != nil {
		p.PickupDate = *upd.PickupDate
	}
	if upd.PickupTime != nil {
		p.PickupTime = *upd.PickupTime
	}
	if upd.ReturnDate != nil {
		p.ReturnDate = *upd.ReturnDate
	}
	if upd.ReturnTime != nil {
		p.ReturnTime = *upd.ReturnTime
	}
}

func (s *service) SelectVehicle(ctx context.Context, session string, vehicleID int64) (*model.BookingDraft, error) {
	v, err := s.catalog.Get(ctx, vehicleID)
	if err != nil {
		return nil, makeErr(ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	// extras and customer details survive a re-pick; the user may change
	// cars mid-flow without re-entering anything
	d.SelectedVehicle = v
	refreshTotal(d)
	return cloneDraft(d), nil
}

func (s *service) UpdateCustomerDetails(ctx context.Context, session string, upd CustomerUpdate) *model.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	if upd.FirstName != nil {
		d.CustomerDetails.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		d.CustomerDetails.LastName = *upd.LastName
	}
	if upd.Email != nil {
		d.CustomerDetails.Email = *upd.Email
	}
	if upd.Phone != nil {
		d.CustomerDetails.Phone = *upd.Phone
	}
	if upd.LicenseNumber != nil {
		d.CustomerDetails.LicenseNumber = *upd.LicenseNumber
	}
	refreshTotal(d)
	return cloneDraft(d)
}

func (s *service) UpdateExtras(ctx context.Context, session string, extras map[model.ExtraKey]bool) *model.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	for k, v := range extras {
		if _, known := model.ExtraPrice(k); known {
			d.Extras[k] = v
		}
	}
	refreshTotal(d)
	return cloneDraft(d)
}

func (s *service) ResetDraft(ctx context.Context, session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[session] = model.NewBookingDraft()
}

func (s *service) Quote(ctx context.Context, session string) (*model.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(session)
	if d.SelectedVehicle == nil {
		return nil, makeErr(ErrMissingVehicle)
	}
	refreshTotal(d)
	return cloneDraft(d), nil
}

// ----- lifecycle -----

func newBookingID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RZ" + suffix[:9]
}

// Finalize turns the session draft into a persisted, confirmed record. The
// draft is only reset after the write commits: an auth, payment or store
// failure leaves it intact so the caller can retry without re-entering data.
func (s *service) Finalize(ctx context.Context, session string, method model.PaymentMethod, card *CardDetails) (*model.BookingRecord, error) {
	s.mu.Lock()
	draft := cloneDraft(s.draftLocked(session))
	s.mu.Unlock()

	if draft.SelectedVehicle == nil {
		return nil, makeErr(ErrMissingVehicle)
	}
	uid, ok := s.ids.CurrentIdentity(ctx)
	if !ok {
		return nil, makeErr(ErrAuthRequired)
	}

	days := RentalDays(draft.SearchParams.PickupDate, draft.SearchParams.ReturnDate)
	// total comes from the formula, never from the draft's cached value
	total, err := ComputeTotal(draft.SelectedVehicle, days, draft.Extras)
	if err != nil {
		return nil, err
	}

	rec := &model.BookingRecord{
		ID:            newBookingID(),
		UserID:        uid,
		Vehicle:       *draft.SelectedVehicle,
		Customer:      draft.CustomerDetails,
		SearchParams:  draft.SearchParams,
		Extras:        copyExtras(draft.Extras),
		RentalDays:    days,
		TotalPrice:    total,
		PaymentMethod: method,
		PaymentStatus: model.PaymentPending,
		Status:        model.BookingConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if method == model.PayCard {
		var cd CardDetails
		if card != nil {
			cd = *card
		}
		if _, err := s.proc.Charge(payment.ChargeReq{
			Reference:      rec.ID,
			Amount:         total,
			CardNumber:     cd.Number,
			ExpiryDate:     cd.ExpiryDate,
			CVV:            cd.CVV,
			CardholderName: cd.CardholderName,
		}); err != nil {
			return nil, makeErr(ErrPaymentDeclined)
		}
		rec.PaymentStatus = model.PaymentCompleted
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return nil, makeErr(ErrPersistFailed)
	}

	s.ResetDraft(ctx, session)
	return rec, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.BookingRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) ListForUser(ctx context.Context, userID int64) ([]model.BookingRecord, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.BookingRecord, 0, len(all))
	for _, rec := range all {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.BookingRecord, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(all)
	return all, nil
}

func sortNewestFirst(recs []model.BookingRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}

func (s *service) Cancel(ctx context.Context, id string) (*model.BookingRecord, error) {
	return s.transition(ctx, id, model.BookingCancelled)
}

func (s *service) Complete(ctx context.Context, id string) (*model.BookingRecord, error) {
	return s.transition(ctx, id, model.BookingCompleted)
}

// transition moves a confirmed record into a terminal state. Cancelled and
// completed records refuse further transitions.
func (s *service) transition(ctx context.Context, id string, to model.BookingStatus) (*model.BookingRecord, error) {
	rec, err := s.store.Update(ctx, id, func(r *model.BookingRecord) error {
		if r.Status != model.BookingConfirmed {
			return makeErr(ErrInvalidTransition)
		}
		r.Status = to
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return rec, nil
}

func (s *service) Modify(ctx context.Context, id string, req ModifyReq) (*model.BookingRecord, error) {
	rec, err := s.store.Update(ctx, id, func(r *model.BookingRecord) error {
		if r.Status != model.BookingConfirmed {
			return makeErr(ErrInvalidTransition)
		}
		applySearchUpdate(&r.SearchParams, req.Search)
		if r.Extras == nil {
			r.Extras = model.DefaultExtras()
		}
		for k, v := range req.Extras {
			if _, known := model.ExtraPrice(k); known {
				r.Extras[k] = v
			}
		}
		r.RentalDays = RentalDays(r.SearchParams.PickupDate, r.SearchParams.ReturnDate)
		// full recompute even for an extras-only change; the stored total is
		// never carried forward
		total, err := ComputeTotal(&r.Vehicle, r.RentalDays, r.Extras)
		if err != nil {
			return err
		}
		r.TotalPrice = total
		now := time.Now().UTC()
		r.ModifiedAt = &now
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return rec, nil
}

func (s *service) mapStoreErr(err error) error {
	if Code(err) != "" {
		return err
	}
	if errors.Is(err, bookingrepo.ErrNotFound) {
		return makeErr(ErrNotFound)
	}
	return makeErr(ErrPersistFailed)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &Summary{Total: len(all)}
	for _, rec := range all {
		switch rec.Status {
		case model.BookingConfirmed:
			out.Confirmed++
			out.Revenue += rec.TotalPrice
		case model.BookingCancelled:
			out.Cancelled++
		case model.BookingCompleted:
			out.Completed++
			out.Revenue += rec.TotalPrice
		}
	}
	return out, nil
}
