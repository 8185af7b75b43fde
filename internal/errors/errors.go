package gerr

import "errors"

var (
	MailApiLimitReached = errors.New("mail api limit reached")
	BadMailRequest      = errors.New("bad mail request")
)
