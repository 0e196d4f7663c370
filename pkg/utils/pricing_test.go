package utils

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three days", "2024-01-01", "2024-01-04", 3},
		{"single day", "2024-01-01", "2024-01-02", 1},
		{"same day floors to one", "2024-01-01", "2024-01-01", 1},
		{"two weeks", "2024-03-01", "2024-03-15", 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RentalDays(date(tc.start), date(tc.end))
			if got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestQuoteBooking(t *testing.T) {
	cases := []struct {
		name        string
		pricePerDay float64
		deliveryFee float64
		start       string
		end         string
		delivery    bool
		wantTotal   float64
	}{
		{"luxury pickup three days", 1200, 0, "2024-01-01", "2024-01-04", false, 3780},
		{"economy pickup two days", 350, 0, "2024-01-01", "2024-01-03", false, 735},
		{"delivery adds fee", 300, 50, "2024-01-01", "2024-01-03", true, 680},
		{"pickup ignores delivery fee", 300, 50, "2024-01-01", "2024-01-03", false, 630},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := QuoteBooking(tc.pricePerDay, tc.deliveryFee, date(tc.start), date(tc.end), tc.delivery)
			if quote.Total != tc.wantTotal {
				t.Fatalf("expected total %.2f got %.2f", tc.wantTotal, quote.Total)
			}
			if quote.Total != quote.BasePrice+quote.DeliveryFee+quote.ServiceFee {
				t.Fatalf("breakdown does not add up: %+v", quote)
			}
		})
	}
}

func TestQuoteBookingServiceFeeRounded(t *testing.T) {
	// 1 day at 350 gives a 17.5 fee, which rounds to 18.
	quote := QuoteBooking(350, 0, date("2024-01-01"), date("2024-01-02"), false)
	if quote.ServiceFee != 18 {
		t.Fatalf("expected service fee 18 got %.2f", quote.ServiceFee)
	}
}
