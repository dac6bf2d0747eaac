package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// MailService delivers the comment notification email. Delivery is strictly
// best effort: it runs in its own goroutine, failures are logged and never
// reach the request that triggered them.
type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Blogicum <%s>\r\n"+
			"Subject: %s\r\n"+
			"\r\n%s", strings.Join(to, ","), s.From, subject, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		}
	}()
}

// SendCommentNotification tells a post's author about a new comment.
func (s *MailService) SendCommentNotification(email, commenter, postTitle, commentText, postLink string) {
	subject := fmt.Sprintf("New comment on %q", postTitle)
	body := fmt.Sprintf(
		"%s commented on your post %q.\n\n%s\n\nRead it here: %s\n",
		commenter, postTitle, commentText, postLink,
	)
	s.sendAsync([]string{email}, subject, body)
}
