package pricing

import (
	"testing"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testFares = domain.FareTable{Economy: 1000, Business: 2500, FirstClass: 6000}

func TestSurgeActive(t *testing.T) {
	rules := DefaultRules()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		history []time.Duration // ages of prior tickets, newest first
		want    bool
	}{
		{
			name:    "three recent tickets within window",
			history: []time.Duration{2 * time.Minute, 5 * time.Minute, 9 * time.Minute},
			want:    true,
		},
		{
			name:    "third ticket outside window",
			history: []time.Duration{2 * time.Minute, 5 * time.Minute, 15 * time.Minute},
			want:    false,
		},
		{
			name:    "only two prior tickets",
			history: []time.Duration{1 * time.Minute, 2 * time.Minute},
			want:    false,
		},
		{
			name:    "no prior tickets",
			history: nil,
			want:    false,
		},
		{
			name:    "third ticket exactly at window edge",
			history: []time.Duration{1 * time.Minute, 2 * time.Minute, 10 * time.Minute},
			want:    true,
		},
		{
			name:    "more than three, third still recent",
			history: []time.Duration{1 * time.Minute, 3 * time.Minute, 8 * time.Minute, 2 * time.Hour},
			want:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			history := make([]time.Time, 0, len(tc.history))
			for _, age := range tc.history {
				history = append(history, now.Add(-age))
			}
			assert.Equal(t, tc.want, rules.SurgeActive(now, history))
		})
	}
}

func TestBaseFare(t *testing.T) {
	economy, err := BaseFare(testFares, domain.TravelClassEconomy)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), economy)

	business, err := BaseFare(testFares, domain.TravelClassBusiness)
	assert.NoError(t, err)
	assert.Equal(t, int64(2500), business)

	first, err := BaseFare(testFares, domain.TravelClassFirstClass)
	assert.NoError(t, err)
	assert.Equal(t, int64(6000), first)

	_, err = BaseFare(testFares, domain.TravelClass("premium"))
	assert.ErrorIs(t, err, domain.ErrInvalidTravelClass)
}

func TestPrice(t *testing.T) {
	rules := DefaultRules()

	price, err := rules.Price(testFares, domain.TravelClassEconomy, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), price)

	price, err = rules.Price(testFares, domain.TravelClassEconomy, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1100), price)

	price, err = rules.Price(testFares, domain.TravelClassBusiness, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(2750), price)
}

func TestPrice_RoundsHalfUp(t *testing.T) {
	rules := DefaultRules()

	// 10% of 105 is 10.5, rounds to 11.
	price, err := rules.Price(domain.FareTable{Economy: 105}, domain.TravelClassEconomy, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(116), price)

	// 10% of 101 is 10.1, rounds to 10.
	price, err = rules.Price(domain.FareTable{Economy: 101}, domain.TravelClassEconomy, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(111), price)
}
