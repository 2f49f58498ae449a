package telegram

import (
	"errors"
	"fmt"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Logger returns middleware that logs who sent each update and its text.
func Logger(l *log.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				l.Printf("update from %d: %q", sender.ID, c.Text())
			}
			return next(c)
		}
	}
}

// Recover returns middleware that turns a handler panic into an error,
// logs it and answers the sender with FailureReply.
func Recover(l *log.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				switch x := r.(type) {
				case error:
					err = x
				case string:
					err = errors.New(x)
				default:
					err = fmt.Errorf("panic: %v", x)
				}
				l.Printf("recovered from panic: %v", err)
				if sendErr := c.Send(FailureReply); sendErr != nil {
					l.Printf("send failure reply: %v", sendErr)
				}
			}()
			return next(c)
		}
	}
}
