package domain

// ChatRecord is one stored question/answer turn. CreatedAt keeps the server's
// formatting; records are immutable once fetched.
type ChatRecord struct {
	Question  string
	Answer    string
	CreatedAt string
}

// ChatWindow is the most-recent-N slice of stored turns. It replaces the
// previous window wholesale on every reload; it is not an append-only history.
type ChatWindow struct {
	Records []ChatRecord
	Total   int
}

// ChatReply is the outcome of a single chat send. CreditsRemaining is empty
// when the server omitted the field.
type ChatReply struct {
	Response         string
	CreditsRemaining string
}
