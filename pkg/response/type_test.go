package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"workpulse/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := strings.Trim(string(b), `"`)
	// Rendering uses Local(), so only assert the wire layout, not the value.
	if _, err := time.Parse(response.DateTimeFormat, str); err != nil {
		t.Errorf("marshaled %q does not follow %q: %v", str, response.DateTimeFormat, err)
	}
}
