package service

// Fixed user-facing failure messages. The underlying store error is logged
// and wrapped, never serialized to callers.
const (
	MsgArticleNotFound    = "Article not found"
	MsgEditionNotFound    = "Edition not found"
	MsgFailedLoadArticles = "Failed to load articles"
	MsgFailedLoadFeatured = "Failed to load featured articles"
	MsgFailedLoadEditions = "Failed to load editions"
	MsgFailedLoadTeam     = "Failed to load team"
)

// Kind classifies a retrieval failure
type Kind int

const (
	// KindNotFound means a single-row lookup matched nothing
	KindNotFound Kind = iota + 1
	// KindFetchFailed means the store reported an error for a query
	KindFetchFailed
)

// Error is the coarse typed failure raised by the query functions
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func fetchFailed(msg string, err error) *Error {
	return &Error{Kind: KindFetchFailed, Message: msg, Err: err}
}
