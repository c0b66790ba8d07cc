package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"insureAdvisor/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	MailjetBaseURL           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

type MailjetRepository struct {
	mailjetConfig MailjetConfig
	client        *http.Client
}

func NewMailjetRepository(cfg MailjetConfig) *MailjetRepository {
	return &MailjetRepository{
		mailjetConfig: cfg,
		client:        &http.Client{Timeout: 5 * time.Second},
	}
}

type mailjetParty struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type mailjetMessage struct {
	From     mailjetParty   `json:"From"`
	To       []mailjetParty `json:"To"`
	Subject  string         `json:"Subject"`
	TextPart string         `json:"TextPart"`
	HTMLPart string         `json:"HTMLPart"`
}

type mailjetPayload struct {
	Messages []mailjetMessage `json:"Messages"`
}

func (r *MailjetRepository) SendEmail(toName, toEmail, subject, message string) (err error) {
	url := r.mailjetConfig.MailjetBaseURL + "/v3.1/send"

	payload := mailjetPayload{
		Messages: []mailjetMessage{
			{
				From: mailjetParty{
					Email: r.mailjetConfig.MailjetSenderEmail,
					Name:  r.mailjetConfig.MailjetSenderName,
				},
				To: []mailjetParty{
					{Email: toEmail, Name: toName},
				},
				Subject:  subject,
				TextPart: message,
				HTMLPart: message,
			},
		},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payloadByte))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.mailjetConfig.MailjetBasicAuthUsername + ":" + r.mailjetConfig.MailjetBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("Mailer returned negative response", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("mailer service return negative response %v", res.StatusCode)
}
