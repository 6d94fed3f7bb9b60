package track

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/internal/models"
)

func billDue(y int, m time.Month, d int) *models.Bill {
	amount := 120.0
	return &models.Bill{
		ID:          "b1",
		HouseholdID: "h1",
		Name:        "Rent",
		Amount:      &amount,
		DueDate:     datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		Recurring:   true,
	}
}

func TestNextRecurringBill_LeapFebruary(t *testing.T) {
	next := nextRecurringBill(billDue(2024, time.January, 31))
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), time.Time(next.DueDate))
}

func TestNextRecurringBill_NonLeapFebruary(t *testing.T) {
	next := nextRecurringBill(billDue(2023, time.January, 31))
	require.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), time.Time(next.DueDate))
}

func TestNextRecurringBill_CopiesBillFieldsFresh(t *testing.T) {
	bill := billDue(2024, time.June, 15)
	bill.Paid = true

	next := nextRecurringBill(bill)

	require.NotEqual(t, bill.ID, next.ID)
	require.Equal(t, bill.HouseholdID, next.HouseholdID)
	require.Equal(t, bill.Name, next.Name)
	require.Equal(t, bill.Amount, next.Amount)
	require.True(t, next.Recurring)
	require.False(t, next.Paid)
	require.Nil(t, next.PaidDate)
}
