package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/hotelops/minibar/utils/errors"
)

// Mirror is the local copy of the three server-owned sources for one room:
// the setup catalog merged with live room stock, the caller's carried stock,
// and today's addition totals. It is replaced wholesale on Refresh, never
// patched from partial fetches.
type Mirror struct {
	Room           model.RoomInfo
	Setups         []model.SetupState
	StaffStock     map[uint64]int
	BatchRefs      map[uint64]string
	DailyAdditions map[uint64]int
}

// Visit is the per-visit context for one room. It is created by StartVisit,
// discarded when the staff member moves to another room, and never shared
// across rooms. All methods serialize on an internal mutex so at most one
// mutation is in flight per visit.
type Visit struct {
	client    *Client
	roomID    uint64
	startedAt time.Time

	mu        sync.Mutex
	mirror    *Mirror
	confirmed int
	completed bool
	outcome   constant.VisitOutcome
	stale     map[uint64]bool
}

// StartVisit signals visit-start for the room and loads the mirror. The
// start signal is idempotent server-side, so re-selecting a room is safe.
func (c *Client) StartVisit(ctx context.Context, roomID uint64) (*Visit, error) {
	v := &Visit{
		client:  c,
		roomID:  roomID,
		outcome: constant.VisitOutcomePending,
		stale:   make(map[uint64]bool),
	}

	var res model.VisitStartResponse
	if err := c.post(ctx, fmt.Sprintf("/api/rooms/%d/visit/start", roomID), nil, &res); err != nil {
		// Best effort: a failed start signal must not block the workflow.
		// The server will create the visit row on the first mutation.
		v.startedAt = time.Now()
	} else {
		v.startedAt = res.StartedAt
	}

	if err := v.Refresh(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Refresh re-fetches room state and daily additions concurrently and swaps
// the mirror in one step, so the engine never observes mixed old and new
// data across the sources. It also clears any per-product stale marks.
func (v *Visit) Refresh(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		stateRes model.SetupAndStockResponse
		dailyRes model.DailyAdditionsResponse
		stateErr error
		dailyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stateErr = v.client.get(ctx, fmt.Sprintf("/api/rooms/%d/setup-and-stock", v.roomID), &stateRes)
	}()
	go func() {
		defer wg.Done()
		dailyErr = v.client.get(ctx, fmt.Sprintf("/api/rooms/%d/daily-additions", v.roomID), &dailyRes)
	}()
	wg.Wait()

	if stateErr != nil {
		return stateErr
	}
	if dailyErr != nil {
		return dailyErr
	}

	mirror := &Mirror{
		Room:           stateRes.Room,
		Setups:         stateRes.Setups,
		StaffStock:     stateRes.StaffStock,
		BatchRefs:      stateRes.BatchRefs,
		DailyAdditions: dailyRes.Additions,
	}
	if mirror.StaffStock == nil {
		mirror.StaffStock = make(map[uint64]int)
	}
	if mirror.DailyAdditions == nil {
		mirror.DailyAdditions = make(map[uint64]int)
	}

	v.mu.Lock()
	v.mirror = mirror
	v.stale = make(map[uint64]bool)
	v.mu.Unlock()
	return nil
}

func (v *Visit) RoomID() uint64       { return v.roomID }
func (v *Visit) StartedAt() time.Time { return v.startedAt }

// Outcome reports the visit outcome as observed client-side. It stays
// pending until a terminal action is confirmed, except that the first
// confirmed product action pins the eventual outcome to products-added.
func (v *Visit) Outcome() constant.VisitOutcome {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.completed && v.confirmed > 0 {
		return constant.VisitOutcomeProductsAdded
	}
	return v.outcome
}

func (v *Visit) Completed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.completed
}

// StaffStock reports the mirrored carried quantity for a product.
func (v *Visit) StaffStock(productID uint64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mirror == nil {
		return 0
	}
	return v.mirror.StaffStock[productID]
}

// DailyAddition reports how much of the product was already added today.
func (v *Visit) DailyAddition(productID uint64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mirror == nil {
		return 0
	}
	return v.mirror.DailyAdditions[productID]
}

// ExtraQuantity reports the mirrored over-setup stock for a product.
func (v *Visit) ExtraQuantity(setupID, productID uint64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	p := v.findProduct(setupID, productID)
	if p == nil {
		return 0
	}
	return p.ExtraQuantity
}

func (v *Visit) Setups() []model.SetupState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mirror == nil {
		return nil
	}
	return v.mirror.Setups
}

// findProduct must be called with v.mu held.
func (v *Visit) findProduct(setupID, productID uint64) *model.SetupProductState {
	if v.mirror == nil {
		return nil
	}
	for i := range v.mirror.Setups {
		if v.mirror.Setups[i].SetupID != setupID {
			continue
		}
		for j := range v.mirror.Setups[i].Products {
			if v.mirror.Setups[i].Products[j].ProductID == productID {
				return &v.mirror.Setups[i].Products[j]
			}
		}
	}
	return nil
}

// Replace restocks consumed product from carried stock, bounded by the setup
// quantity and today's additions. Every precondition is checked against the
// mirror before the request leaves the device, each with its own error.
func (v *Visit) Replace(ctx context.Context, setupID, productID uint64, amount int) (*model.MutationResponse, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	if v.stale[productID] {
		return nil, errors.SetCustomError(constant.ErrRefreshRequired)
	}
	if amount < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	p := v.findProduct(setupID, productID)
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if amount > p.SetupQuantity {
		return nil, errors.SetCustomError(constant.ErrExceedsSetupCapacity)
	}
	if v.mirror.DailyAdditions[productID]+amount > p.SetupQuantity {
		return nil, errors.SetCustomError(constant.ErrExceedsSetupCapacity)
	}
	if v.mirror.StaffStock[productID] < amount {
		return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
	}

	req := &model.ReplaceRequest{
		ProductID: productID,
		SetupID:   setupID,
		Amount:    amount,
		BatchRef:  v.mirror.BatchRefs[productID],
	}

	var res model.MutationResponse
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/replace", v.roomID), req, &res); err != nil {
		// The mirror may be stale; block this product until a refresh.
		v.stale[productID] = true
		return nil, err
	}

	v.mirror.StaffStock[productID] -= amount
	v.mirror.DailyAdditions[productID] += amount
	p.Current += amount
	v.confirmed++
	return &res, nil
}

// AddExtra places product beyond the setup target. No relation to the setup
// quantity or the daily cap, only to available carried stock.
func (v *Visit) AddExtra(ctx context.Context, setupID, productID uint64, amount int) (*model.MutationResponse, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	if v.stale[productID] {
		return nil, errors.SetCustomError(constant.ErrRefreshRequired)
	}
	if amount < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	p := v.findProduct(setupID, productID)
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if v.mirror.StaffStock[productID] < amount {
		return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
	}

	req := &model.ExtraRequest{
		ProductID: productID,
		SetupID:   setupID,
		Amount:    amount,
		BatchRef:  v.mirror.BatchRefs[productID],
	}

	var res model.MutationResponse
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/extra", v.roomID), req, &res); err != nil {
		v.stale[productID] = true
		return nil, err
	}

	v.mirror.StaffStock[productID] -= amount
	p.ExtraQuantity += amount
	v.confirmed++
	return &res, nil
}

// ResetExtra clears the extra quantity tracked for a product. It is always
// sent, even when the mirrored extra is already zero; the server decides
// whether that is a no-op. Clearing extra does not count as consumption.
func (v *Visit) ResetExtra(ctx context.Context, setupID, productID uint64) (*model.MutationResponse, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	if v.stale[productID] {
		return nil, errors.SetCustomError(constant.ErrRefreshRequired)
	}

	p := v.findProduct(setupID, productID)
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	req := &model.ResetExtraRequest{
		ProductID: productID,
		SetupID:   setupID,
	}

	var res model.MutationResponse
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/extra/reset", v.roomID), req, &res); err != nil {
		v.stale[productID] = true
		return nil, err
	}

	p.ExtraQuantity = 0
	return &res, nil
}

// CompleteProductsAdded closes the visit as products-added. At least one
// product action must have been confirmed during the visit.
func (v *Visit) CompleteProductsAdded(ctx context.Context, taskRef string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	if v.confirmed == 0 {
		return errors.SetCustomError(constant.ErrNoProductActions)
	}

	req := &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeProductsAdded, TaskRef: taskRef}
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/visit/complete", v.roomID), req, nil); err != nil {
		return err
	}

	v.completed = true
	v.outcome = constant.VisitOutcomeProductsAdded
	return nil
}

// MarkNoConsumption closes the visit as untouched. It is rejected locally
// once any product action has been confirmed, so the audit trail can never
// hold a consumption record for a room reported as untouched.
func (v *Visit) MarkNoConsumption(ctx context.Context, taskRef string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	if v.confirmed > 0 {
		return errors.SetCustomError(constant.ErrConsumptionRecorded)
	}

	req := &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeNoConsumption, TaskRef: taskRef}
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/visit/complete", v.roomID), req, nil); err != nil {
		return err
	}

	v.completed = true
	v.outcome = constant.VisitOutcomeNoConsumption
	return nil
}

// MarkDoNotDisturb closes the visit for an inaccessible room. The server
// tracks the attempt count and escalates past the cap.
func (v *Visit) MarkDoNotDisturb(ctx context.Context, taskRef, notes string) (*model.DNDResponse, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.completed {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}

	req := &model.DNDRequest{TaskRef: taskRef, Notes: notes}
	var res model.DNDResponse
	if err := v.client.post(ctx, fmt.Sprintf("/api/rooms/%d/do-not-disturb", v.roomID), req, &res); err != nil {
		return nil, err
	}

	v.completed = true
	v.outcome = constant.VisitOutcomeDoNotDisturb
	return &res, nil
}
