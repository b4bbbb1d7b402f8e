package ingest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "topsecret", RateLimitPerMin: 60})
	payload := []byte(`{"user_id":"u1","activities":[]}`)

	if err := v.ValidateSignature(payload, sign("topsecret", payload)); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}

	if err := v.ValidateSignature(payload, sign("wrongsecret", payload)); err == nil {
		t.Error("signature from wrong secret accepted")
	}

	if err := v.ValidateSignature(payload, "sha256=nothex"); err == nil {
		t.Error("malformed hex accepted")
	}

	if err := v.ValidateSignature(payload, hex.EncodeToString([]byte("raw"))); err == nil {
		t.Error("signature without sha256= prefix accepted")
	}

	tampered := append([]byte{}, payload...)
	tampered[0] = '['
	if err := v.ValidateSignature(tampered, sign("topsecret", payload)); err == nil {
		t.Error("tampered payload accepted")
	}
}

func TestValidateSignature_NoSecret(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})
	payload := []byte(`{}`)

	// Deliveries must be rejected outright when no secret is configured.
	if err := v.ValidateSignature(payload, sign("", payload)); err == nil {
		t.Error("unsigned deployment accepted a delivery")
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "s", RateLimitPerMin: 60})

	// Burst is a tenth of the per-minute budget.
	for i := 0; i < 6; i++ {
		if err := v.CheckRateLimit("appA"); err != nil {
			t.Fatalf("request %d within burst rejected: %v", i+1, err)
		}
	}
	if err := v.CheckRateLimit("appA"); err == nil {
		t.Error("request beyond burst accepted")
	}

	// A different source has its own bucket.
	if err := v.CheckRateLimit("appB"); err != nil {
		t.Errorf("independent source rejected: %v", err)
	}
}
