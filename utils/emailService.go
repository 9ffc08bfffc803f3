package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"codequest/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		// Mail is optional; nothing to do without credentials
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CodeQuest <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by every notification mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0F1117; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #6D28D9; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.content h2 { color: #6D28D9; margin-top: 0; }
			.footer { background-color: #F3F4F6; padding: 20px; text-align: center; font-size: 12px; color: #6B7280; }
			.xp-badge { display: inline-block; padding: 6px 14px; border-radius: 14px; background-color: #6D28D9; color: #FFFFFF; font-weight: bold; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CODEQUEST</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CodeQuest. Keep learning, keep leveling up.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Registration
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to CodeQuest"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to <strong>CodeQuest</strong>! Your account is ready.</p>
		<p>Pick a course, work through its modules and pass each quiz to earn XP. Every 1000 XP takes you up a level.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Your quest begins!", body))
}

// 2. Level up
func SendLevelUpEmail(email, name string, newLevel int) {
	subject := fmt.Sprintf("Level %d reached!", newLevel)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations, you just reached <span class="xp-badge">Level %d</span>.</p>
		<p>Head back to your dashboard to see what's next.</p>
	`, name, newLevel)

	go SendEmail([]string{email}, subject, getEmailTemplate("Level up!", body))
}

// 3. Weekly digest
func SendDigestEmail(email, name string, completions int, xp int) {
	subject := "Your CodeQuest week"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This week you completed <strong>%d</strong> module(s).</p>
		<p>Your total stands at <span class="xp-badge">%d XP</span>. Keep it going!</p>
	`, name, completions, xp)

	go SendEmail([]string{email}, subject, getEmailTemplate("Weekly progress", body))
}
