package chat

import qchat "github.com/abhisek/quizbot/internal/chat"

// replyMsg carries the dispatcher's replies and the progress that follows them.
type replyMsg struct {
	Replies []string
	Status  qchat.Status
	Err     error
}
