package budget

const (
	logMsgCategoryAdded   = "category added"
	logMsgCategoryRemoved = "category removed"
	logMsgExpenseAdded    = "expense added"
	logMsgExpenseRemoved  = "expense removed"
	logMsgDocumentSaved   = "budget document saved"
	logMsgDocumentLoaded  = "budget document loaded"
	logMsgSaveFailed      = "failed to save budget document"
	logMsgLoadFailed      = "failed to load budget document"

	logAttrCategory      = "category"
	logAttrAmount        = "amount"
	logAttrExpenseNumber = "expense_number"
	logAttrDocumentKey   = "document_key"
	logAttrCategoryCount = "category_count"
	logAttrError         = "error"
)

// logOperation logs operational information at info level if the logger is configured.
func (m *Manager) logOperation(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (m *Manager) logError(msg string, err error, args ...any) {
	if m.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		m.logger.Error(msg, allArgs...)
	}
}
