package middleware

import "testing"

func TestLoginRateLimiter_AllowsBurstThenBlocks(t *testing.T) {
	rl := NewLoginRateLimiterWithConfig(1, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Attempt %d within burst must be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Attempt past the burst must be blocked")
	}
}

func TestLoginRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewLoginRateLimiterWithConfig(1, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("First attempt must be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Second attempt from the same key must be blocked")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("A different key must have its own budget")
	}
}
