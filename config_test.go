package denclue

import "testing"

func TestValidateConfigAccepted(t *testing.T) {
	cfg := Config{Dim: 2, Sigma: 1, Xi: 1}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("validateConfig() = %v, want nil", err)
	}
}

func TestValidateConfigRejectsBadDim(t *testing.T) {
	cfg := Config{Dim: 0, Sigma: 1, Xi: 1}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("validateConfig() = nil, want error for Dim < 1")
	}
}

func TestValidateConfigRejectsBadSigma(t *testing.T) {
	cfg := Config{Dim: 2, Sigma: 0, Xi: 1}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("validateConfig() = nil, want error for Sigma <= 0")
	}
}

func TestValidateConfigRejectsBadXi(t *testing.T) {
	cfg := Config{Dim: 2, Sigma: 1, Xi: -1}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("validateConfig() = nil, want error for Xi <= 0")
	}
}
