package library

const (
	logMsgBookAdded      = "book added"
	logMsgMemberAdded    = "member added"
	logMsgBookBorrowed   = "book borrowed"
	logMsgBookReturned   = "book returned"
	logMsgLoanDropped    = "loan dropped, it references a missing book or member"
	logMsgDocumentSaved  = "library document saved"
	logMsgDocumentLoaded = "library document loaded"
	logMsgSaveFailed     = "failed to save library document"
	logMsgLoadFailed     = "failed to load library document"
	logAttrBookID        = "book_id"
	logAttrBookType      = "book_type"
	logAttrMemberID      = "member_id"
	logAttrDocumentKey   = "document_key"
	logAttrBookCount     = "book_count"
	logAttrMemberCount   = "member_count"
	logAttrLoanCount     = "loan_count"
	logAttrError         = "error"
)

// logOperation logs operational information at info level if the logger is configured.
func (l *Library) logOperation(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

// logWarning logs non-critical issues at warn level if the logger is configured.
func (l *Library) logWarning(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (l *Library) logError(msg string, err error, args ...any) {
	if l.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		l.logger.Error(msg, allArgs...)
	}
}
