package registry

// Logger interface for operational logging of registry mutations, warnings, and persistence failures.
//
// It is satisfied by *slog.Logger. Registries accept it as an optional collaborator,
// a nil Logger disables logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
