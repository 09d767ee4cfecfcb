package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

const (
	defaultFileMode       = fs.FileMode(0o644)
	logMsgDocumentWritten = "document written"
	logMsgDocumentRead    = "document read"
	logMsgWriteFailed     = "failed to write document"
	logMsgReadFailed      = "failed to read document"
	logAttrPath           = "path"
	logAttrBytes          = "bytes"
	logAttrError          = "error"
)

// ErrInvalidDocumentJSON is returned when a document handed to SaveDocument is not valid JSON.
var ErrInvalidDocumentJSON = errors.New("document json is not valid")

// Store is a file-backed registry.DocumentStore.
type Store struct {
	fileMode fs.FileMode
	logger   registry.Logger
}

// Option defines a functional option for configuring Store.
type Option func(*Store)

// WithFileMode sets the permission bits of newly created document files.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.fileMode = mode
	}
}

// WithLogger sets the logger for the Store.
func WithLogger(logger registry.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store with optional configuration.
func New(options ...Option) Store {
	s := Store{fileMode: defaultFileMode}

	for _, option := range options {
		option(&s)
	}

	return s
}

// SaveDocument writes the document to the file at path, replacing any previous content.
func (s Store) SaveDocument(ctx context.Context, path string, document []byte) error {
	if path == "" {
		return registry.ErrEmptyDocumentKey
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(registry.ErrWritingDocumentFailed, err)
	}

	if !jsoniter.ConfigFastest.Valid(document) {
		return errors.Join(registry.ErrWritingDocumentFailed, ErrInvalidDocumentJSON)
	}

	if err := os.WriteFile(path, document, s.fileMode); err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgWriteFailed, logAttrError, err.Error(), logAttrPath, path)
		}

		return errors.Join(registry.ErrWritingDocumentFailed, err)
	}

	if s.logger != nil {
		s.logger.Debug(logMsgDocumentWritten, logAttrPath, path, logAttrBytes, len(document))
	}

	return nil
}

// LoadDocument reads the whole file at path.
//
// A missing file is reported as registry.ErrDocumentNotFound, the returned error also matches fs.ErrNotExist.
func (s Store) LoadDocument(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, registry.ErrEmptyDocumentKey
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(registry.ErrReadingDocumentFailed, err)
	}

	document, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(registry.ErrDocumentNotFound, registry.ErrReadingDocumentFailed, err)
		}

		if s.logger != nil {
			s.logger.Error(logMsgReadFailed, logAttrError, err.Error(), logAttrPath, path)
		}

		return nil, errors.Join(registry.ErrReadingDocumentFailed, err)
	}

	if s.logger != nil {
		s.logger.Debug(logMsgDocumentRead, logAttrPath, path, logAttrBytes, len(document))
	}

	return document, nil
}
