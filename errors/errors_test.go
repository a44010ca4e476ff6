package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Upstream("Payment gateway error", cause)

	if err.Code != http.StatusBadGateway {
		t.Fatalf("expected code 502, got %d", err.Code)
	}
	if err.Error() != "Payment gateway error: connection refused" {
		t.Fatalf("unexpected Error(): %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestErrorJSONOmitsCause(t *testing.T) {
	err := Validation("Invalid input: name is required", stderrors.New("internal detail"))

	b, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("marshal: %v", marshalErr)
	}
	if strings.Contains(string(b), "internal detail") {
		t.Fatalf("wrapped cause leaked into JSON: %s", b)
	}
	if !strings.Contains(string(b), `"code":400`) {
		t.Fatalf("expected code in JSON: %s", b)
	}
}
