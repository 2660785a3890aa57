package mail

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	From struct {
		Email string `json:"email"`
	} `json:"from"`
	To []struct {
		Email string `json:"email"`
	} `json:"to"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func newTestMailer(t *testing.T, status int) (*MailService, *[]sentMail) {
	t.Helper()
	var got []sentMail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		var m sentMail
		require.NoError(t, json.Unmarshal(raw, &m))
		got = append(got, m)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return &MailService{
		DomainSender: "noreply@repro.test",
		MailtrapUrl:  srv.URL,
		MailAPI:      "token-1",
		Location:     time.UTC,
		client:       srv.Client(),
	}, &got
}

func TestSendFileAssigned(t *testing.T) {
	m, got := newTestMailer(t, http.StatusOK)

	err := m.SendFileAssigned(context.Background(), FileAssignedNotice{
		To:           "ayse@repro.test",
		DesignerName: "Ayse",
		FileNo:       "R-1001",
		Action:       entity.ActionTransferToRepro,
		AssignedAt:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, *got, 1)
	mail := (*got)[0]
	assert.Equal(t, "noreply@repro.test", mail.From.Email)
	assert.Equal(t, "ayse@repro.test", mail.To[0].Email)
	assert.Contains(t, mail.Subject, "R-1001")
	assert.Contains(t, mail.Subject, "repro")
	assert.Contains(t, mail.Text, "10.03.2026 09:30")
	assert.Equal(t, "File Assignment", mail.Category)
}

func TestSendLongRunningReminder(t *testing.T) {
	m, got := newTestMailer(t, http.StatusOK)

	err := m.SendLongRunningReminder(context.Background(), &entity.LongRunningEntry{
		UserName:  "Burak",
		UserEmail: "burak@repro.test",
		FileNo:    "R-2002",
		StartedAt: time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC),
	}, 11*time.Hour+5*time.Minute)

	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Contains(t, (*got)[0].Text, "11:05:00")
	assert.Equal(t, "burak@repro.test", (*got)[0].To[0].Email)
}

func TestSend_ErrorStatus(t *testing.T) {
	m, _ := newTestMailer(t, http.StatusUnauthorized)

	err := m.SendLongRunningReminder(context.Background(), &entity.LongRunningEntry{UserEmail: "x@repro.test"}, time.Hour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}
