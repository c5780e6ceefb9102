// file: services/mailer_service.go
package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func smtpDialer() (*gomail.Dialer, string) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 465
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	from := os.Getenv("EMAIL_ADDRESS")
	password := os.Getenv("EMAIL_PASSWORD")

	d := gomail.NewDialer(host, port, from, password)
	d.SSL = port == 465
	return d, from
}

func sendHTML(to, subject, body string) error {
	d, from := smtpDialer()
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return d.DialAndSend(m)
}

// SendTeamWelcomeEmail tells a participant they were added to a team.
func SendTeamWelcomeEmail(to, creatorName string) error {
	if creatorName == "" {
		creatorName = "Your team leader"
	}
	body := fmt.Sprintf(`
	<html>
	<body style="background-color: #ffffff; color: #2ecc71; font-family: Arial, sans-serif; text-align: center;">
		<h1>Welcome to Hatch!</h1>
		<p>You've been added to a team by <strong>%s</strong> for a Hackathon.</p>
		<p style="font-size: 18px;">Get ready to innovate!</p>
		<br><br>
		<footer style="color: gray; font-size: 12px;">This is an automated message from Hatch.</footer>
	</body>
	</html>
	`, creatorName)
	return sendHTML(to, "You're part of a team on Hatch!", body)
}

// SendCertificateEmail delivers one templated certificate notification.
// Signature matches CertificateSender.
func SendCertificateEmail(to, name, eventName, certificateURL, achievement, subjectPrefix, organizerName string) error {
	subject := fmt.Sprintf("%s Your Certificate from %s", subjectPrefix, eventName)
	body := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="text-align: center;">Congratulations!</h1>
		<p>Dear <strong>%s</strong>,</p>
		<p>The results for <strong>%s</strong> have been published, and we're excited to share your achievement!</p>
		<p style="color: #27ae60; font-weight: bold;">Your Achievement: %s</p>
		<p style="text-align: center;">
			<a href="%s">View &amp; Download Your Certificate</a>
		</p>
		<p>Thank you for your participation and congratulations once again!</p>
		<p style="color: #7f8c8d;">Best regards,<br><strong>%s</strong><br>%s Organizing Team</p>
		<hr>
		<p style="color: #7f8c8d; font-size: 0.8rem; text-align: center;">
			This is an automated message sent upon publishing of hackathon results.
		</p>
	</body>
	</html>
	`, name, eventName, achievement, certificateURL, organizerName, eventName)
	return sendHTML(to, subject, body)
}
