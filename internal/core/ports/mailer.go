package ports

import "context"

// MailMessage is a rendered outbound email.
type MailMessage struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer is the outbound mail transport. Send blocks until the transport
// accepts or rejects the message; implementations must bound the call with
// a timeout and must not leak credentials in returned errors.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
