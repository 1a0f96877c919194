package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"example/cosmic-api/app/config"
	"example/cosmic-api/app/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() models.Report {
	r := models.Report{
		ID:      9,
		Title:   "Natal Chart Analysis for Ada <3",
		Input:   models.BirthInput{Name: "Ada", BirthDate: "1990-05-15", BirthTime: "14:30", BirthPlace: "London"},
		SunSign: "Taurus",
	}
	for i := range r.Slides {
		r.Slides[i] = models.Slide{Title: "Section", Content: "line one\nline two"}
	}
	return r
}

func TestRenderReport(t *testing.T) {
	msg, err := RenderReport(sampleReport())
	require.NoError(t, err)

	assert.Equal(t, "Your Cosmic Report: Natal Chart Analysis for Ada <3", msg.Subject)
	assert.Contains(t, msg.HTML, "Natal Chart Analysis for Ada &lt;3")
	assert.Contains(t, msg.HTML, "line one<br>line two")
	assert.Contains(t, msg.HTML, "Taurus")
	assert.NotContains(t, msg.Text, "<br>")
	assert.Contains(t, msg.Text, "line one\nline two")
}

func TestValidateAddress(t *testing.T) {
	got, err := ValidateAddress("  ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got)

	for _, bad := range []string{"", "not-an-email", "Ada <ada@example.com>", "a@"} {
		_, err := ValidateAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidRecipient, bad)
	}
}

func TestNewUnconfigured(t *testing.T) {
	cases := []config.EmailConfig{
		{Provider: "sendgrid", FromAddress: "support@example.com"},
		{Provider: "sendgrid", APIKey: "key"},
		{Provider: "ses"},
	}
	for _, cfg := range cases {
		m, err := New(context.Background(), cfg)
		require.NoError(t, err)
		assert.ErrorIs(t, m.Send(context.Background(), Message{To: "a@b.c"}), ErrNotConfigured)
	}
}

func TestSendGridSend(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sg := newSendGridWithHost("sg-key", srv.URL, Sender{Address: "support@example.com", Name: "Cosmic Lottery Support"})
	err := sg.Send(context.Background(), Message{To: "ada@example.com", Subject: "Hi", HTML: "<p>x</p>", Text: "x"})
	require.NoError(t, err)

	from := body["from"].(map[string]any)
	assert.Equal(t, "support@example.com", from["email"])
	assert.Equal(t, "Hi", body["subject"])
}

func TestSendGridSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	sg := newSendGridWithHost("bad", srv.URL, Sender{Address: "support@example.com"})
	assert.Error(t, sg.Send(context.Background(), Message{To: "ada@example.com"}))
}

type fakeSES struct {
	in  *sesv2.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return &sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, f.err
}

func TestSESSend(t *testing.T) {
	fake := &fakeSES{}
	s := NewSES(fake, Sender{Address: "support@example.com", Name: "Cosmic Lottery Support"})

	require.NoError(t, s.Send(context.Background(), Message{To: "ada@example.com", Subject: "Hi", HTML: "<p>x</p>", Text: "x"}))
	assert.Equal(t, `"Cosmic Lottery Support" <support@example.com>`, aws.ToString(fake.in.FromEmailAddress))
	assert.Equal(t, []string{"ada@example.com"}, fake.in.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(fake.in.Content.Simple.Subject.Data))

	fake.err = errors.New("throttled")
	assert.Error(t, s.Send(context.Background(), Message{To: "ada@example.com"}))
}
