package myjwt

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := New("secret", "JobTracker", 1)

	token, err := m.GenerateToken("u1", "demo@jobtracker.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "demo@jobtracker.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsOtherKey(t *testing.T) {
	token, err := New("secret", "JobTracker", 1).GenerateToken("u1", "a@b.c")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := New("other", "JobTracker", 1).ParseToken(token); err == nil {
		t.Error("expected error for token signed with another key")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := New("secret", "JobTracker", 1)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.GenerateToken("u1", "a@b.c")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	m.now = time.Now
	if _, err := m.ParseToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestEmptyKey(t *testing.T) {
	if _, err := New("", "JobTracker", 1).GenerateToken("u1", "a@b.c"); err == nil {
		t.Error("expected error for empty key")
	}
}
