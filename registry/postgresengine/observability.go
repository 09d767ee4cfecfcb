package postgresengine

import (
	"math"
	"time"
)

const (
	logMsgBuildQueryFailed = "failed to build sql statement"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database statement execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgSQLExecuted      = "executed sql for: "
	logMsgOperation        = "document store operation: "

	logAttrError        = "error"
	logAttrQuery        = "query"
	logAttrDocumentKey  = "document_key"
	logAttrDocumentSize = "document_bytes"
	logAttrDurationMS   = "duration_ms"
	logAttrTable        = "table"

	logActionSave        = "save"
	logActionLoad        = "load"
	logActionDelete      = "delete"
	logActionCreateTable = "create table"
)

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (ds DocumentStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if ds.logger != nil {
		ds.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (ds DocumentStore) logOperation(action string, args ...any) {
	if ds.logger != nil {
		ds.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarning logs non-critical issues at warn level if the logger is configured.
func (ds DocumentStore) logWarning(msg string, args ...any) {
	if ds.logger != nil {
		ds.logger.Warn(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (ds DocumentStore) logError(msg string, err error, args ...any) {
	if ds.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		ds.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
