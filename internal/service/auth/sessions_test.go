package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewSessions_SecretTooShort(t *testing.T) {
	if _, err := NewSessions("short", time.Hour); err == nil {
		t.Fatal("expected error for short secret, got nil")
	}
}

func TestNewSessions_DefaultTTL(t *testing.T) {
	s, err := NewSessions(testSecret, 0)
	if err != nil {
		t.Fatalf("NewSessions err=%v", err)
	}
	if s.TTL() != DefaultTTL {
		t.Errorf("TTL = %v, want %v", s.TTL(), DefaultTTL)
	}
}

func TestSessions_IssueAndParse(t *testing.T) {
	s, err := NewSessions(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessions err=%v", err)
	}

	token, expiresAt, err := s.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiresAt = %v, want about an hour out", expiresAt)
	}

	userID, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if userID != "user-123" {
		t.Errorf("Parse returned %q, want user-123", userID)
	}
}

func TestSessions_ParseWrongSecret(t *testing.T) {
	issuer, _ := NewSessions(testSecret, time.Hour)
	verifier, _ := NewSessions("ffffffffffffffffffffffffffffffff", time.Hour)

	token, _, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Parse err=%v, want ErrInvalidSession", err)
	}
}

func TestSessions_ParseExpired(t *testing.T) {
	s, _ := NewSessions(testSecret, time.Hour)
	s.ttl = -time.Minute

	token, _, err := s.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}

	if _, err := s.Parse(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Parse err=%v, want ErrInvalidSession", err)
	}
}

func TestSessions_ParseGarbage(t *testing.T) {
	s, _ := NewSessions(testSecret, time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := s.Parse(tok); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Parse(%q) err=%v, want ErrInvalidSession", tok, err)
		}
	}
}
