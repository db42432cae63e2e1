package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// pathID extracts the numeric id after prefix, rejecting sub-paths.
// Path format: {prefix}{id}
func pathID(r *http.Request, prefix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	if path == "" {
		return 0, fmt.Errorf("id parameter is required")
	}
	if strings.Contains(path, "/") {
		return 0, fmt.Errorf("invalid path format")
	}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}

// subPathID extracts the numeric id between prefix and suffix.
// Path format: {prefix}{id}{suffix}
func subPathID(r *http.Request, prefix, suffix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	idStr := strings.TrimSuffix(path, suffix)
	if idStr == path || idStr == "" {
		return 0, fmt.Errorf("invalid path format")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}

// respondError maps repository errors to HTTP status codes
func respondError(w http.ResponseWriter, op string, err error) {
	log.Printf("❌ %s: %v", op, err)
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "not found"):
		http.Error(w, errMsg, http.StatusNotFound)
	case strings.Contains(errMsg, "already converted"),
		strings.Contains(errMsg, "must be positive"),
		strings.Contains(errMsg, "invalid date"),
		strings.Contains(errMsg, "is required"):
		http.Error(w, errMsg, http.StatusBadRequest)
	default:
		http.Error(w, fmt.Sprintf("%s failed: %v", op, err), http.StatusInternalServerError)
	}
}

// parseDateRange validates optional from/to query parameters (YYYY-MM-DD)
func parseDateRange(r *http.Request) (*string, *string, error) {
	var from, to *string

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			return nil, nil, fmt.Errorf("invalid from date format, use YYYY-MM-DD")
		}
		from = &fromStr
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			return nil, nil, fmt.Errorf("invalid to date format, use YYYY-MM-DD")
		}
		to = &toStr
	}

	return from, to, nil
}
