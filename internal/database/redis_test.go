package database

import "testing"

func TestNewRedisClient_EmptyURLIsOptional(t *testing.T) {
	client, err := NewRedisClient("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client when Redis is not configured")
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient("not a url"); err == nil {
		t.Fatalf("expected parse error for invalid URL")
	}
}
