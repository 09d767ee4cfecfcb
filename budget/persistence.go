package budget

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-budget-registry/registry"
	"github.com/AntonStoeckl/library-budget-registry/registry/filestore"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document converts the whole Manager to its persisted form.
func (m *Manager) Document() Document {
	doc := Document{Categories: make(map[string]CategoryRecord, len(m.categories))}
	for name, category := range m.categories {
		doc.Categories[name] = category.Record()
	}

	return doc
}

// MarshalDocument serializes the Manager to an indented JSON document with categories in name order.
func (m *Manager) MarshalDocument() ([]byte, error) {
	data, err := json.MarshalIndent(m.Document(), "", "  ")
	if err != nil {
		return nil, errors.Join(registry.ErrEncodingDocumentFailed, err)
	}

	return data, nil
}

// UnmarshalDocument REPLACES all categories with the ones described by the JSON document.
//
// Categories are registered under the name stored inside each category record.
// If the document is malformed or holds an invalid expense, the Manager is left untouched.
func (m *Manager) UnmarshalDocument(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Join(registry.ErrDecodingDocumentFailed, err)
	}

	categories := make(map[string]*Category, len(doc.Categories))
	for _, record := range doc.Categories {
		category, err := CategoryFromRecord(record)
		if err != nil {
			return errors.Join(registry.ErrDecodingDocumentFailed, err)
		}

		if _, exists := categories[category.Name()]; exists {
			return errors.Join(
				registry.ErrDecodingDocumentFailed,
				fmt.Errorf("%w: %q", ErrCategoryAlreadyExists, category.Name()),
			)
		}

		categories[category.Name()] = category
	}

	m.categories = categories

	return nil
}

// Save writes the Manager as a JSON document to the file at path.
func (m *Manager) Save(path string) error {
	return m.SaveTo(context.Background(), filestore.New(), path)
}

// Load REPLACES all categories with the JSON document stored in the file at path.
//
// A missing file yields an error matching fs.ErrNotExist, a malformed one an error matching
// registry.ErrDecodingDocumentFailed. In both cases the Manager is left untouched.
func (m *Manager) Load(path string) error {
	return m.LoadFrom(context.Background(), filestore.New(), path)
}

// SaveTo writes the Manager as a JSON document to the store under key.
func (m *Manager) SaveTo(ctx context.Context, store registry.DocumentStore, key string) error {
	data, err := m.MarshalDocument()
	if err != nil {
		m.logError(logMsgSaveFailed, err, logAttrDocumentKey, key)
		return err
	}

	if saveErr := store.SaveDocument(ctx, key, data); saveErr != nil {
		m.logError(logMsgSaveFailed, saveErr, logAttrDocumentKey, key)
		return saveErr
	}

	m.logOperation(logMsgDocumentSaved, logAttrDocumentKey, key, logAttrCategoryCount, len(m.categories))

	return nil
}

// LoadFrom REPLACES all categories with the JSON document stored under key, see UnmarshalDocument.
func (m *Manager) LoadFrom(ctx context.Context, store registry.DocumentStore, key string) error {
	data, err := store.LoadDocument(ctx, key)
	if err != nil {
		m.logError(logMsgLoadFailed, err, logAttrDocumentKey, key)
		return err
	}

	if decodeErr := m.UnmarshalDocument(data); decodeErr != nil {
		m.logError(logMsgLoadFailed, decodeErr, logAttrDocumentKey, key)
		return decodeErr
	}

	m.logOperation(logMsgDocumentLoaded, logAttrDocumentKey, key, logAttrCategoryCount, len(m.categories))

	return nil
}
