package common

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

// LoginRequiredPrefix marks an envelope message that means the session expired.
const LoginRequiredPrefix = "Please login"

// Envelope is the backend's wrapper around every payload: {"error": ..., "data": ...}.
// Error is null or "" on success.
type Envelope struct {
	Error json.RawMessage `json:"error"`
	Data  json.RawMessage `json:"data"`
}

// NewEnvelope builds a success envelope around data.
func NewEnvelope(data interface{}) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Error: json.RawMessage("null"), Data: raw}, nil
}

// Failed reports whether the backend flagged an application-level failure.
// Only null, a missing field and "" count as success.
func (e Envelope) Failed() bool {
	raw := bytes.TrimSpace(e.Error)
	return len(raw) != 0 && string(raw) != "null" && string(raw) != `""`
}

// ErrorText is the error field rendered as text, "" when null or empty.
func (e Envelope) ErrorText() string {
	return ScalarText(e.Error)
}

// DataText is the data field rendered as text, "" when null, empty or falsy.
func (e Envelope) DataText() string {
	return ScalarText(e.Data)
}

// LoginRequired reports whether data carries the session-expired message.
func (e Envelope) LoginRequired() bool {
	var s string
	if err := json.Unmarshal(e.Data, &s); err != nil {
		return false
	}
	return strings.HasPrefix(s, LoginRequiredPrefix)
}

// Decode unmarshals the data field into v.
func (e Envelope) Decode(v interface{}) error {
	if len(e.Data) == 0 {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal(e.Data, v)
}

// ScalarText renders a raw JSON value as message text. Strings are unquoted;
// null, "", false and 0 are treated as absent; anything else is returned as
// its JSON text.
func ScalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch string(raw) {
	case "null", `""`, "false", "0":
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// RespondWithData writes a success envelope.
func RespondWithData(w http.ResponseWriter, data interface{}) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"error": nil, "data": data})
}

// RespondWithError writes a failure envelope carrying message in data.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]interface{}{"error": "error", "data": message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
