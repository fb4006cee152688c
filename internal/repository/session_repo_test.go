package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"lumina-storefront/internal/session"
)

func TestSessionRepo_AddGetDelete(t *testing.T) {
	r := NewSessionRepo(time.Hour)
	s := session.New(uuid.New(), NewProductRepo(), nil, nil)
	r.Add(s)

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatalf("expected same session pointer")
	}

	r.Delete(s.ID)
	if _, err := r.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepo_EvictIdle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewSessionRepo(30 * time.Minute)
	r.now = func() time.Time { return now }

	stale := session.New(uuid.New(), NewProductRepo(), nil, nil)
	fresh := session.New(uuid.New(), NewProductRepo(), nil, nil)
	r.Add(stale)
	r.Add(fresh)

	now = now.Add(20 * time.Minute)
	if _, err := r.Get(fresh.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(15 * time.Minute)
	if n := r.EvictIdle(); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, err := r.Get(stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected stale session evicted")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session left, got %d", r.Len())
	}
}
