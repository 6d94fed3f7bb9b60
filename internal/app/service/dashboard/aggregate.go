package dashboard

import (
	"time"

	"github.com/samber/lo"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/dates"
)

// AlertKind names the source entity of an alert item. Orders never alert;
// they only feed the deliveries count.
type AlertKind string

const (
	AlertKindSubscription AlertKind = "subscription"
	AlertKindMaintenance  AlertKind = "maintenance"
	AlertKindBill         AlertKind = "bill"
	AlertKindActivity     AlertKind = "activity"
)

// AlertItem is an ephemeral per-record summary built fresh on every
// aggregation pass. Days is nil exactly when the source date is absent.
type AlertItem struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Kind    AlertKind  `json:"type"`
	Date    *time.Time `json:"date"`
	Days    *int       `json:"days"`
	Urgency dates.Tier `json:"urgency"`
	Label   string     `json:"label"`
}

func newAlertItem(id, name string, kind AlertKind, date *time.Time, days int, ok bool) AlertItem {
	return AlertItem{
		ID:      id,
		Name:    name,
		Kind:    kind,
		Date:    date,
		Days:    daysPtr(days, ok),
		Urgency: dates.TierFor(days, ok, dates.WarnThresholdWeek),
		Label:   dates.RelativeDays(days, ok),
	}
}

type Stats struct {
	Subscriptions int `json:"subscriptions"`
	MaintOverdue  int `json:"maint_overdue"`
	BillsUnpaid   int `json:"bills_unpaid"`
	Deliveries    int `json:"deliveries"`
}

// Summary is the dashboard payload. Bucket slices preserve the iteration
// order of their source collections; no cross-type sort is applied.
type Summary struct {
	Overdue           []AlertItem `json:"overdue"`
	DueThisWeek       []AlertItem `json:"due_this_week"`
	CompletedRecently []AlertItem `json:"completed_recently"`
	Stats             Stats       `json:"stats"`
}

// Input carries the five already-fetched collections of one household.
type Input struct {
	Subscriptions []*models.Subscription
	Maintenance   []*models.MaintenanceItem
	Bills         []*models.Bill
	Orders        []*models.Order
	Activities    []*models.Activity
}

// Aggregate buckets the input into overdue / due-this-week / completed-recently
// alerts plus summary counts. It is pure: today is the only clock reference,
// and identical inputs produce identical output.
func Aggregate(in Input, today time.Time) *Summary {
	out := &Summary{
		Overdue:           []AlertItem{},
		DueThisWeek:       []AlertItem{},
		CompletedRecently: []AlertItem{},
	}

	out.Stats.Subscriptions = len(in.Subscriptions)
	for _, s := range in.Subscriptions {
		date := models.AsTime(s.NextRenewalDate)
		days, ok := dates.DaysUntil(today, date)
		item := newAlertItem(s.ID, s.Name, AlertKindSubscription, date, days, ok)
		switch {
		case ok && days < 0:
			out.Overdue = append(out.Overdue, item)
		case ok && days <= dates.WarnThresholdWeek:
			out.DueThisWeek = append(out.DueThisWeek, item)
		}
	}

	for _, m := range in.Maintenance {
		nextDue := m.NextDue()
		days, ok := dates.DaysUntil(today, nextDue)
		item := newAlertItem(m.ID, m.Name, AlertKindMaintenance, nextDue, days, ok)
		switch {
		case ok && days < 0:
			out.Overdue = append(out.Overdue, item)
			out.Stats.MaintOverdue++
		case ok && days <= dates.WarnThresholdWeek:
			out.DueThisWeek = append(out.DueThisWeek, item)
		}
	}

	for _, b := range in.Bills {
		if !b.Paid {
			out.Stats.BillsUnpaid++
			due := b.DueAt()
			days, ok := dates.DaysUntil(today, &due)
			item := newAlertItem(b.ID, b.Name, AlertKindBill, &due, days, ok)
			switch {
			case ok && days < 0:
				out.Overdue = append(out.Overdue, item)
			case ok && days <= dates.WarnThresholdWeek:
				out.DueThisWeek = append(out.DueThisWeek, item)
			}
		}
		if b.Paid && b.PaidDate != nil {
			paidAt := models.AsTime(b.PaidDate)
			if days, ok := dates.DaysUntil(today, paidAt); ok && days >= -dates.WarnThresholdWeek && days <= 0 {
				out.CompletedRecently = append(out.CompletedRecently, newAlertItem(b.ID, b.Name, AlertKindBill, paidAt, days, true))
			}
		}
	}

	for _, a := range in.Activities {
		if a.EventDate == nil {
			continue
		}
		date := models.AsTime(a.EventDate)
		days, ok := dates.DaysUntil(today, date)
		item := newAlertItem(a.ID, a.Name, AlertKindActivity, date, days, ok)
		switch {
		// A past activity whose amount was already paid is settled, not overdue.
		case ok && days < 0 && (a.AmountDue == nil || a.PaymentPending()):
			out.Overdue = append(out.Overdue, item)
		case ok && days >= 0 && days <= dates.WarnThresholdWeek:
			out.DueThisWeek = append(out.DueThisWeek, item)
		}
	}

	out.Stats.Deliveries = lo.CountBy(in.Orders, func(o *models.Order) bool {
		days, ok := dates.DaysUntil(today, models.AsTime(o.NextDeliveryDate))
		return ok && days >= 0 && days <= dates.WarnThresholdWeek
	})

	return out
}

func daysPtr(days int, ok bool) *int {
	if !ok {
		return nil
	}
	return &days
}
