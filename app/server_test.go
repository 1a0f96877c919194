package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example/cosmic-api/app/config"
	"example/cosmic-api/app/mailer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

const testWebhookSecret = "whsec_test_secret"

type fakeCompleter struct {
	text  string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeCheckout struct {
	calls int
	in    CheckoutInput
	err   error
}

func (f *fakeCheckout) CreateCheckoutSession(_ context.Context, in CheckoutInput) (*stripe.CheckoutSession, error) {
	f.calls++
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

type testEnv struct {
	mock      sqlmock.Sqlmock
	completer *fakeCompleter
	mailer    *fakeMailer
	checkout  *fakeCheckout
	router    *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	env := &testEnv{
		mock:      mock,
		completer: &fakeCompleter{text: wellFormedReading},
		mailer:    &fakeMailer{},
		checkout:  &fakeCheckout{},
	}
	cfg := &config.Config{
		Stripe: config.StripeConfig{
			WebhookSecret: testWebhookSecret,
			FrontendURL:   "https://cosmic.test/",
		},
		LLM: config.LLMConfig{Timeout: 5 * time.Second},
	}
	srv := NewServer(Deps{
		Store:     NewStore(db),
		Config:    cfg,
		Completer: env.completer,
		Mailer:    env.mailer,
		Checkout:  env.checkout,
	})
	env.router = NewRouter(srv)
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const wellFormedReading = `1. Psychological and Personality Profile
You are curious.

2. Career and Vocational Strengths
Leadership suits you.

3. Relationship Style and Love Patterns
Loyal partner.

4. Karmic Lessons and Past Life Indicators
Patience.

5. Current Major Transits (next 1–2 years)
Big changes ahead.
`

var reportColumnNames = []string{
	"id", "user_id", "report_title",
	"input_name", "input_birth_date", "input_birth_time", "input_birth_place",
	"sun_sign",
	"slide1_title", "slide1_content",
	"slide2_title", "slide2_content",
	"slide3_title", "slide3_content",
	"slide4_title", "slide4_content",
	"slide5_title", "slide5_content",
	"is_shared", "share_token", "share_token_generated_at", "created_at",
}

func reportRows(id, userID int64, shared bool, token any) *sqlmock.Rows {
	return sqlmock.NewRows(reportColumnNames).AddRow(
		id, userID, "Natal Chart Analysis for Ada",
		"Ada", "1990-05-15", "14:30", "London",
		"Taurus",
		"1. Psychological and Personality Profile", "p1",
		"2. Career and Vocational Strengths", "p2",
		"3. Relationship Style and Love Patterns", "p3",
		"4. Karmic Lessons and Past Life Indicators", "p4",
		"5. Current Major Transits (next 1–2 years)", "p5",
		shared, token, nil, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	)
}

func userRows(id int64, email, hash string, customer any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "stripe_customer_id", "created_at"}).
		AddRow(id, email, hash, customer, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

type closingCompleter struct {
	fakeCompleter
	closed bool
}

func (c *closingCompleter) Close() error {
	c.closed = true
	return nil
}

func TestServerCloseReleasesCompleter(t *testing.T) {
	cc := &closingCompleter{}
	srv := NewServer(Deps{Completer: cc})
	require.NoError(t, srv.Close())
	require.True(t, cc.closed)

	require.NoError(t, NewServer(Deps{}).Close())
}
