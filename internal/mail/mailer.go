package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendFileAssigned(ctx context.Context, n FileAssignedNotice) error
	SendLongRunningReminder(ctx context.Context, e *entity.LongRunningEntry, elapsed time.Duration) error
}

// FileAssignedNotice ist der Inhalt der Benachrichtigung an den Grafiker.
type FileAssignedNotice struct {
	To           string
	DesignerName string
	FileNo       string
	Action       entity.FileAction
	AssignedAt   time.Time
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
	Location     *time.Location
	client       *http.Client
}

// NewMailer nutzt außerhalb von prod die Mailtrap-Sandbox.
func NewMailer(cfg *config.AppConfig) *MailService {
	m := &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
		Location:     cfg.Location(),
		client:       &http.Client{Timeout: 10 * time.Second},
	}
	if cfg.APP.State == "prod" {
		m.DomainSender = cfg.MAILTRAP.API.MailtrapDomain
		m.MailtrapUrl = cfg.MAILTRAP.API.MailtrapURL
		m.MailAPI = cfg.MAILTRAP.API.MailtrapTokenAPI
	}
	return m
}

func (m *MailService) SendFileAssigned(ctx context.Context, n FileAssignedNotice) error {
	subject := fmt.Sprintf("Yeni dosya havuzunuzda: %s", n.FileNo)
	if n.Action == entity.ActionTransferToRepro {
		subject = fmt.Sprintf("Dosya repro aşamasına aktarıldı: %s", n.FileNo)
	}

	text := fmt.Sprintf(`Merhaba %s,

%s numaralı dosya %s tarihinde size atandı ve artık havuzunuzda.
Çalışmaya başlamak için panelden dosyayı seçip "Başla" deyin.

Repro Dosya Takip`, n.DesignerName, n.FileNo, n.AssignedAt.In(m.loc()).Format("02.01.2006 15:04"))

	return m.send(ctx, n.To, "Repro Dosya Takip - Atama", subject, text, "File Assignment")
}

func (m *MailService) SendLongRunningReminder(ctx context.Context, e *entity.LongRunningEntry, elapsed time.Duration) error {
	text := fmt.Sprintf(`Merhaba %s,

%s numaralı dosyada başlattığınız zaman kaydı hâlâ açık.
Başlangıç : %s
Süre      : %s

Çalışmayı bitirdiyseniz lütfen kaydı durdurun, aksi halde raporlara fazla süre yazılır.

Repro Dosya Takip`, e.UserName, e.FileNo, e.StartedAt.In(m.loc()).Format("02.01.2006 15:04"), utils.FormatDuration(int64(elapsed/time.Second)))

	subject := fmt.Sprintf("Açık zaman kaydı: %s", e.FileNo)
	return m.send(ctx, e.UserEmail, "Repro Dosya Takip - Hatırlatma", subject, text, "Long Running Entry")
}

func (m *MailService) loc() *time.Location {
	if m.Location == nil {
		return time.UTC
	}
	return m.Location
}

// send schickt eine Textmail über die Mailtrap Send-API.
func (m *MailService) send(ctx context.Context, to, fromName, subject, text, category string) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  fromName,
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject":  subject,
		"text":     text,
		"category": category,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("Fehler beim Serialisieren der Mail: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.MailtrapUrl, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("Fehler beim Erstellen der Mail-Anfrage: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := m.client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Mailer: Mailtrap nicht erreichbar")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	log.Debug().Str("category", category).Msg("Mailer: Mail versendet")
	return nil
}
