package http

import (
	"context"
)

// requestInteraction answers the dialogs of one submit request. The link is
// handed back to the page, which opens it.
type requestInteraction struct {
	confirm  bool
	prompt   string
	messages []string
	link     string
}

func (i *requestInteraction) Notice(message string) {
	i.messages = append(i.messages, message)
}

func (i *requestInteraction) Alert(message string) {
	i.messages = append(i.messages, message)
}

func (i *requestInteraction) Confirm(message string) bool {
	i.prompt = message
	return i.confirm
}

func (i *requestInteraction) OpenLink(_ context.Context, link string) error {
	i.link = link
	return nil
}
