package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext records what a handler sends. Only the methods handlers use
// are implemented; anything else panics on the nil embedded Context.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Input    string
	CB       *tele.Callback
	EditErr  error
	Sent     []string
	Edited   []string
	Output   []string // Sent and Edited, in order
	Markups  []*tele.ReplyMarkup
	Answers  []*tele.CallbackResponse
	Notified []tele.ChatAction
}

var _ tele.Context = (*FakeContext)(nil)

// NewFakeMessage creates a context for a text message from userID
func NewFakeMessage(userID int64, text string) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID}, Input: text}
}

// NewFakeCallback creates a context for an inline button press from userID
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID},
		CB:    &tele.Callback{ID: "cb", Data: data},
	}
}

func (f *FakeContext) Sender() *tele.User { return f.User }

func (f *FakeContext) Text() string { return f.Input }

func (f *FakeContext) Callback() *tele.Callback { return f.CB }

func (f *FakeContext) Notify(a tele.ChatAction) error {
	f.Notified = append(f.Notified, a)
	return nil
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, fmt.Sprint(what))
	f.Output = append(f.Output, fmt.Sprint(what))
	f.recordMarkup(opts)
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, fmt.Sprint(what))
	f.Output = append(f.Output, fmt.Sprint(what))
	f.recordMarkup(opts)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.Answers = append(f.Answers, &tele.CallbackResponse{})
		return nil
	}
	f.Answers = append(f.Answers, resp...)
	return nil
}

// Last returns the most recent text sent or edited
func (f *FakeContext) Last() string {
	if len(f.Output) == 0 {
		return ""
	}
	return f.Output[len(f.Output)-1]
}

func (f *FakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			f.Markups = append(f.Markups, m)
		}
	}
}
