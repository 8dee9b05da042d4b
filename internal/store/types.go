package store

// OutboxEntry is a confirmed message awaiting handoff to its delivery
// channel.
type OutboxEntry struct {
	ID            int64
	MsgID         string
	User          string
	Kind          string
	Address       string
	Subject       string
	Body          string
	Status        string // queued, sending, sent, failed
	ErrorMessage  string
	ProviderMsgID string
}

// Transcript is one archived sent item.
type Transcript struct {
	ID      int64
	User    string
	Kind    string
	Address string
	Preview string
	SentAt  int64
}
