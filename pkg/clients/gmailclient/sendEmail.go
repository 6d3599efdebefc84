package gmailclient

import (
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/api/gmail/v1"
)

// Minimum gap between sends, to respect Gmail API rate limits
const emailInterval = 3 * time.Second

// SendEmail sends an email with the specified subject and body.
// Sends are serialized and throttled to one every emailInterval.
func (c *Client) SendEmail(to, subject, body string) error {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	if !c.lastSendTime.IsZero() {
		elapsed := time.Since(c.lastSendTime)
		if elapsed < emailInterval {
			time.Sleep(emailInterval - elapsed)
		}
	}

	var headers string
	if c.sender != "" {
		headers = fmt.Sprintf("From: %s\r\n", c.sender)
	}
	message := fmt.Sprintf("%sTo: %s\r\nSubject: %s\r\n\r\n%s", headers, to, subject, body)

	gmailMessage := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(message)),
	}

	if _, err := c.service.Users.Messages.Send("me", gmailMessage).Do(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.lastSendTime = time.Now()

	return nil
}
