// api.go
package main

import (
	"encoding/json"
	"net/http"
	"time"
)

// fieldsReport is the JSON view of the current dataset: per-field summaries
// plus the selection as it stands.
type fieldsReport struct {
	FileName  string         `json:"fileName"`
	RowCount  int            `json:"rowCount"`
	Fields    []FieldSummary `json:"fields"`
	Selection Selection      `json:"selection"`
}

func apiFieldsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		json.NewEncoder(w).Encode(APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	ds := session.Dataset()
	if ds == nil {
		json.NewEncoder(w).Encode(APIResponse{Success: false, Error: "no dataset uploaded"})
		return
	}
	json.NewEncoder(w).Encode(APIResponse{Success: true, Data: fieldsReport{
		FileName:  ds.Name,
		RowCount:  len(ds.Rows),
		Fields:    summarizeFields(ds),
		Selection: session.Selection(),
	}})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
