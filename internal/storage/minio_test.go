package storage

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPublicURLDerivation(t *testing.T) {
	s := &MinioStorage{publicBase: "http://localhost:9000/images"}
	got := s.PublicURL("abc.jpg")
	if got != "http://localhost:9000/images/abc.jpg" {
		t.Fatalf("unexpected public url %q", got)
	}
}

func TestPublicReadPolicyShape(t *testing.T) {
	raw := publicReadPolicy("images")

	var policy struct {
		Version   string
		Statement []struct {
			Effect   string
			Action   string
			Resource string
		}
	}
	if err := json.Unmarshal([]byte(raw), &policy); err != nil {
		t.Fatalf("policy is not valid JSON: %v", err)
	}
	if len(policy.Statement) != 1 || policy.Statement[0].Action != "s3:GetObject" {
		t.Fatalf("unexpected policy %s", raw)
	}
	if !strings.HasSuffix(policy.Statement[0].Resource, ":images/*") {
		t.Fatalf("policy resource should cover the bucket, got %q", policy.Statement[0].Resource)
	}
}
