// Package fetcher downloads the board CSV over HTTP and parses it into raw
// records.
package fetcher

// RawRecord is one CSV row as read: an untyped mapping of column name to
// string value. Columns beyond the recognized set are carried through and
// ignored downstream.
type RawRecord map[string]string
