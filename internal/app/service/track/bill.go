package track

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/dates"
	"github.com/mossleaf/homeops/pkg/logctx"
	"github.com/mossleaf/homeops/pkg/tool"
)

func (s *Service) ListBills(ctx context.Context, householdID string) ([]*models.Bill, error) {
	var items []*models.Bill
	if err := s.scoped(ctx, householdID).Order("due_date asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return items, nil
}

func (s *Service) CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	bill.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(bill).Error; err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	return bill, nil
}

func (s *Service) UpdateBill(ctx context.Context, householdID, id string, patch map[string]any) error {
	return s.updateScoped(ctx, &models.Bill{}, householdID, id, patch)
}

func (s *Service) DeleteBill(ctx context.Context, householdID, id string) error {
	return s.deleteScoped(ctx, &models.Bill{}, householdID, id)
}

// MarkBillPaid settles a bill and, for recurring bills, creates next month's
// bill with the due day clamped to the target month (Jan 31 -> Feb 28/29).
//
// The two writes are sequential, not one transaction: if the successor insert
// fails after the update committed, the bill stays paid and the recurrence
// chain must be re-created by hand. Callers must not mark the same bill paid
// concurrently or the successor is duplicated.
func (s *Service) MarkBillPaid(ctx context.Context, householdID, id string, today time.Time) (*models.Bill, *models.Bill, error) {
	bill, err := firstScoped[models.Bill](s, ctx, householdID, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.updateScoped(ctx, &models.Bill{}, householdID, id, map[string]any{
		"paid":      true,
		"paid_date": models.DateOf(today),
	}); err != nil {
		return nil, nil, err
	}
	bill.Paid = true
	bill.PaidDate = models.DateOf(today)

	if !bill.Recurring {
		return bill, nil, nil
	}

	successor := nextRecurringBill(bill)
	if err := s.db.WithContext(ctx).Create(successor).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("recurring bill successor insert failed; chain broken",
			"bill_id", bill.ID, "err", err)
		return bill, nil, fmt.Errorf("failed to create next bill: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("recurring bill rolled over",
		"bill_id", bill.ID, "next_bill_id", successor.ID, "next_due", time.Time(successor.DueDate).Format("2006-01-02"))
	return bill, successor, nil
}

// nextRecurringBill builds the unpaid successor of a recurring bill, due one
// month later with the day clamped to the target month.
func nextRecurringBill(bill *models.Bill) *models.Bill {
	return &models.Bill{
		ID:          tool.GenerateUUIDV7(),
		HouseholdID: bill.HouseholdID,
		CreatedBy:   bill.CreatedBy,
		Name:        bill.Name,
		Amount:      bill.Amount,
		DueDate:     datatypes.Date(dates.NextMonthClamped(bill.DueAt())),
		Recurring:   true,
		Notes:       bill.Notes,
	}
}
