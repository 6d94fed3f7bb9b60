package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/dates"
)

var today = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func dateAt(offset int) *time.Time {
	t := time.Date(2024, time.March, 15+offset, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregate_EmptyInput(t *testing.T) {
	out := Aggregate(Input{}, today)

	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
	require.Empty(t, out.CompletedRecently)
	require.Equal(t, Stats{}, out.Stats)
}

func TestAggregate_UnpaidBillOverdue(t *testing.T) {
	bill := &models.Bill{ID: "b1", Name: "Electricity", DueDate: *models.DateOf(*dateAt(-3))}

	out := Aggregate(Input{Bills: []*models.Bill{bill}}, today)

	require.Len(t, out.Overdue, 1)
	require.Equal(t, "b1", out.Overdue[0].ID)
	require.Equal(t, AlertKindBill, out.Overdue[0].Kind)
	require.NotNil(t, out.Overdue[0].Days)
	require.Equal(t, -3, *out.Overdue[0].Days)
	require.Equal(t, dates.TierOverdue, out.Overdue[0].Urgency)
	require.Equal(t, "3d ago", out.Overdue[0].Label)
	require.Equal(t, 1, out.Stats.BillsUnpaid)
}

func TestAggregate_BillDueThisWeek(t *testing.T) {
	bill := &models.Bill{ID: "b1", Name: "Water", DueDate: *models.DateOf(*dateAt(5))}

	out := Aggregate(Input{Bills: []*models.Bill{bill}}, today)

	require.Empty(t, out.Overdue)
	require.Len(t, out.DueThisWeek, 1)
	require.Equal(t, dates.TierWarn, out.DueThisWeek[0].Urgency)
	require.Equal(t, "in 5d", out.DueThisWeek[0].Label)
	require.Equal(t, 1, out.Stats.BillsUnpaid)
}

func TestAggregate_UnpaidBillBeyondWeekStillCounted(t *testing.T) {
	bill := &models.Bill{ID: "b1", Name: "Rent", DueDate: *models.DateOf(*dateAt(20))}

	out := Aggregate(Input{Bills: []*models.Bill{bill}}, today)

	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
	require.Equal(t, 1, out.Stats.BillsUnpaid)
}

func TestAggregate_PaidBillRecentlyCompleted(t *testing.T) {
	bill := &models.Bill{
		ID: "b1", Name: "Internet", Paid: true,
		DueDate:  *models.DateOf(*dateAt(-2)),
		PaidDate: models.DateOf(*dateAt(-2)),
	}

	out := Aggregate(Input{Bills: []*models.Bill{bill}}, today)

	require.Empty(t, out.Overdue)
	require.Zero(t, out.Stats.BillsUnpaid)
	require.Len(t, out.CompletedRecently, 1)
	require.Equal(t, -2, *out.CompletedRecently[0].Days)
}

func TestAggregate_PaidBillLongAgoNotListed(t *testing.T) {
	bill := &models.Bill{
		ID: "b1", Name: "Internet", Paid: true,
		DueDate:  *models.DateOf(*dateAt(-30)),
		PaidDate: models.DateOf(*dateAt(-30)),
	}

	out := Aggregate(Input{Bills: []*models.Bill{bill}}, today)

	require.Empty(t, out.CompletedRecently)
}

func TestAggregate_PaidActivityNotOverdue(t *testing.T) {
	amount := 50.0
	act := &models.Activity{
		ID: "a1", Name: "Soccer fee", AmountDue: &amount, Paid: true,
		EventDate: models.DateOf(*dateAt(-2)),
	}

	out := Aggregate(Input{Activities: []*models.Activity{act}}, today)

	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
}

func TestAggregate_UnpaidActivityOverdue(t *testing.T) {
	amount := 50.0
	act := &models.Activity{
		ID: "a1", Name: "Soccer fee", AmountDue: &amount,
		EventDate: models.DateOf(*dateAt(-2)),
	}

	out := Aggregate(Input{Activities: []*models.Activity{act}}, today)

	require.Len(t, out.Overdue, 1)
	require.Equal(t, AlertKindActivity, out.Overdue[0].Kind)
}

func TestAggregate_FreePastActivityOverdue(t *testing.T) {
	// No amount attached: nothing to settle, a past date still surfaces.
	act := &models.Activity{ID: "a1", Name: "Dentist", EventDate: models.DateOf(*dateAt(-1))}

	out := Aggregate(Input{Activities: []*models.Activity{act}}, today)

	require.Len(t, out.Overdue, 1)
}

func TestAggregate_UpcomingActivityIgnoresPaymentState(t *testing.T) {
	amount := 25.0
	act := &models.Activity{
		ID: "a1", Name: "Swim class", AmountDue: &amount, Paid: true,
		EventDate: models.DateOf(*dateAt(3)),
	}

	out := Aggregate(Input{Activities: []*models.Activity{act}}, today)

	require.Len(t, out.DueThisWeek, 1)
}

func TestAggregate_ActivityWithoutDateSkipped(t *testing.T) {
	act := &models.Activity{ID: "a1", Name: "Sometime"}

	out := Aggregate(Input{Activities: []*models.Activity{act}}, today)

	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
}

func TestAggregate_MaintenanceNeverCompleted(t *testing.T) {
	item := &models.MaintenanceItem{ID: "m1", Name: "Gutter cleaning", IntervalDays: 180}

	out := Aggregate(Input{Maintenance: []*models.MaintenanceItem{item}}, today)

	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
	require.Zero(t, out.Stats.MaintOverdue)
}

func TestAggregate_MaintenanceOverdueCounted(t *testing.T) {
	item := &models.MaintenanceItem{
		ID: "m1", Name: "Filter change", IntervalDays: 30,
		LastCompleted: models.DateOf(*dateAt(-45)),
	}

	out := Aggregate(Input{Maintenance: []*models.MaintenanceItem{item}}, today)

	require.Len(t, out.Overdue, 1)
	require.Equal(t, 1, out.Stats.MaintOverdue)
	require.Equal(t, -15, *out.Overdue[0].Days)
}

func TestAggregate_SubscriptionCountsAll(t *testing.T) {
	subs := []*models.Subscription{
		{ID: "s1", Name: "Streaming", NextRenewalDate: models.DateOf(*dateAt(2))},
		{ID: "s2", Name: "Gym"},
		{ID: "s3", Name: "News", NextRenewalDate: models.DateOf(*dateAt(-1))},
	}

	out := Aggregate(Input{Subscriptions: subs}, today)

	require.Equal(t, 3, out.Stats.Subscriptions)
	require.Len(t, out.DueThisWeek, 1)
	require.Len(t, out.Overdue, 1)
	require.Equal(t, "s3", out.Overdue[0].ID)
}

func TestAggregate_DeliveriesWithinWeek(t *testing.T) {
	orders := []*models.Order{
		{ID: "o1", Name: "Groceries", NextDeliveryDate: models.DateOf(*dateAt(3))},
		{ID: "o2", Name: "Pet food", NextDeliveryDate: models.DateOf(*dateAt(10))},
		{ID: "o3", Name: "Coffee"},
		{ID: "o4", Name: "Pharmacy", NextDeliveryDate: models.DateOf(*dateAt(-1))},
		{ID: "o5", Name: "Veg box", NextDeliveryDate: models.DateOf(*dateAt(7))},
	}

	out := Aggregate(Input{Orders: orders}, today)

	require.Equal(t, 2, out.Stats.Deliveries)
	require.Empty(t, out.Overdue)
	require.Empty(t, out.DueThisWeek)
}

func TestAggregate_PreservesInsertionOrder(t *testing.T) {
	in := Input{
		Subscriptions: []*models.Subscription{
			{ID: "s1", Name: "Streaming", NextRenewalDate: models.DateOf(*dateAt(-2))},
		},
		Maintenance: []*models.MaintenanceItem{
			{ID: "m1", Name: "Filter", IntervalDays: 10, LastCompleted: models.DateOf(*dateAt(-20))},
		},
		Bills: []*models.Bill{
			{ID: "b1", Name: "Power", DueDate: *models.DateOf(*dateAt(-1))},
		},
	}

	out := Aggregate(in, today)

	require.Len(t, out.Overdue, 3)
	require.Equal(t, "s1", out.Overdue[0].ID)
	require.Equal(t, "m1", out.Overdue[1].ID)
	require.Equal(t, "b1", out.Overdue[2].ID)
}

func TestAggregate_Idempotent(t *testing.T) {
	amount := 12.0
	in := Input{
		Subscriptions: []*models.Subscription{
			{ID: "s1", Name: "Streaming", NextRenewalDate: models.DateOf(*dateAt(4))},
		},
		Maintenance: []*models.MaintenanceItem{
			{ID: "m1", Name: "Filter", IntervalDays: 30, LastCompleted: models.DateOf(*dateAt(-40))},
		},
		Bills: []*models.Bill{
			{ID: "b1", Name: "Power", DueDate: *models.DateOf(*dateAt(-3))},
		},
		Orders: []*models.Order{
			{ID: "o1", Name: "Groceries", NextDeliveryDate: models.DateOf(*dateAt(2))},
		},
		Activities: []*models.Activity{
			{ID: "a1", Name: "Soccer fee", AmountDue: &amount, EventDate: models.DateOf(*dateAt(-2))},
		},
	}

	first := Aggregate(in, today)
	second := Aggregate(in, today)

	require.Equal(t, first, second)
}
