package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendBookingEmail notifies a tutor that a learner booked their tutorial.
func SendBookingEmail(tutorEmail, learnerEmail, language string) error {
	from := os.Getenv("EMAIL_FROM")
	pass := os.Getenv("EMAIL_PASS")

	msg := fmt.Sprintf(`Subject: TutorHub - New Booking

Dear tutor,

%s has booked your %s tutorial.

Log in to TutorHub to see the booking details.

Thank you,
TutorHub Team
`, learnerEmail, language)

	return smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{tutorEmail},
		[]byte(msg),
	)
}
