package utils

import "net/http"

const (
	contentTypeHeader = "Content-Type"
	contentTypeAtom   = "application/atom+xml;charset=utf-8"
)

// WriteAtom writes an already encoded Atom document with the given status.
func WriteAtom(w http.ResponseWriter, payload []byte, statusCode int) (int, error) {
	w.Header().Set(contentTypeHeader, contentTypeAtom)
	w.WriteHeader(statusCode)

	return w.Write(payload)
}
