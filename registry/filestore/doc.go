// Package filestore provides a registry.DocumentStore that keeps each document in its own file.
//
// The document key is the file path. Writes replace the whole file,
// there is no partial-write recovery: a crash mid-write can leave a corrupted file.
package filestore
