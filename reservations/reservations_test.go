package reservations

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"restaurant-bot/events"
	"restaurant-bot/metrics"
	"restaurant-bot/models"
	"restaurant-bot/store/gormstore"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

// 2030-03-15 18:30 local
var fixedNow = time.Date(2030, time.March, 15, 18, 30, 0, 0, ist)

type recordingPublisher struct{ events []events.Event }

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func setup(t *testing.T) (*Service, *recordingPublisher, *metrics.Metrics, models.Restaurant) {
	t.Helper()
	s, err := gormstore.Open(filepath.Join(t.TempDir(), "reservations.db"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	r := models.Restaurant{Name: "Taj Terrace", Address: "Eastern gate, Agra", Phone: "070600 05331", Hours: "11 PM", PriceRange: "₹400-1000"}
	r.ApplyDefaults()
	require.NoError(t, s.InsertCatalog(context.Background(), []models.Restaurant{r}, nil))

	pub := &recordingPublisher{}
	m := metrics.New()
	svc := NewService(s, s, pub, m, zap.NewNop().Sugar()).WithClock(func() time.Time { return fixedNow })
	return svc, pub, m, r
}

func validRequest(restaurantID string) Request {
	return Request{
		CustomerName: "Ravi",
		Email:        "ravi@example.com",
		Phone:        "9876500000",
		RestaurantID: restaurantID,
		Date:         "2030-03-20",
		Time:         "19:30",
		Guests:       4,
	}
}

func TestCreate(t *testing.T) {
	svc, pub, m, r := setup(t)
	req := validRequest(r.ID)
	req.SpecialRequests = "  terrace table  "

	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "2030-03-20", res.Date.Format(models.DateLayout))
	assert.Equal(t, "terrace table", res.SpecialRequests)
	require.NotNil(t, res.Restaurant)
	assert.Equal(t, "Taj Terrace", res.Restaurant.Name)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "reservation.created", pub.events[0].Topic)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsCreated))
}

func TestCreateToday(t *testing.T) {
	svc, _, _, r := setup(t)
	req := validRequest(r.ID)
	req.Date = "2030-03-15"

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	svc, pub, _, r := setup(t)

	tests := []struct {
		name   string
		modify func(*Request)
		reason string
	}{
		{name: "missing name", modify: func(r *Request) { r.CustomerName = "" }, reason: models.MsgRequiredFields},
		{name: "missing date", modify: func(r *Request) { r.Date = "" }, reason: models.MsgRequiredFields},
		{name: "missing time", modify: func(r *Request) { r.Time = " " }, reason: models.MsgRequiredFields},
		{name: "missing guests", modify: func(r *Request) { r.Guests = 0 }, reason: models.MsgRequiredFields},
		{name: "negative guests", modify: func(r *Request) { r.Guests = -2 }, reason: "Number of guests must be at least 1"},
		{name: "yesterday", modify: func(r *Request) { r.Date = "2030-03-14" }, reason: "Reservation date must be today or in the future"},
		{name: "bad date", modify: func(r *Request) { r.Date = "15/03/2030" }, reason: "date must be YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(r.ID)
			tt.modify(&req)

			_, err := svc.Create(context.Background(), req)
			var ve *models.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
	assert.Empty(t, pub.events)
}

func TestCreateUnknownRestaurant(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.Create(context.Background(), validRequest("missing"))
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2030-01-02", ist)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 2, 0, 0, 0, 0, ist), d)

	d, err = ParseDate("2030-01-02T10:00:00Z", ist)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("tomorrow", ist)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestStartOfDay(t *testing.T) {
	assert.Equal(t, time.Date(2030, 3, 15, 0, 0, 0, 0, ist), StartOfDay(fixedNow))
}

func TestByEmail(t *testing.T) {
	svc, _, _, r := setup(t)
	ctx := context.Background()

	first := validRequest(r.ID)
	second := validRequest(r.ID)
	second.Date = "2030-04-01"
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	got, err := svc.ByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2030-04-01", got[0].Date.In(ist).Format(models.DateLayout))
	require.NotNil(t, got[0].Restaurant)
	assert.Equal(t, "Eastern gate, Agra", got[0].Restaurant.Address)
}
