package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestBcryptHasher_Hash はハッシュが平文と異なり、検証可能なbcryptダイジェストであることを検証します。
func TestBcryptHasher_Hash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "" || hashed == "password123" {
		t.Error("password is not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("password123")); err != nil {
		t.Errorf("invalid bcrypt hash: %v", err)
	}
}

// TestBcryptHasher_Hash_RandomSalt は同じ平文でも呼び出しごとに異なるダイジェストになることを検証します。
func TestBcryptHasher_Hash_RandomSalt(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected per-call random salt to produce different digests")
	}
}

// TestBcryptHasher_Compare は一致・不一致・不正なダイジェストの各ケースを検証します。
func TestBcryptHasher_Compare(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hashed, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("matching password", func(t *testing.T) {
		t.Parallel()
		if err := h.Compare(hashed, "password123"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		if err := h.Compare(hashed, "wrong-password"); err == nil {
			t.Error("expected error for wrong password")
		}
	})

	t.Run("malformed digest", func(t *testing.T) {
		t.Parallel()
		if err := h.Compare("not-a-bcrypt-hash", "password123"); err == nil {
			t.Error("expected error for malformed digest")
		}
	})
}

// TestNewBcryptHasher_CostFallback は最低コスト未満の指定がDefaultCostに置き換えられることを検証します。
func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != DefaultCost {
		t.Errorf("expected cost %d, got %d", DefaultCost, h.cost)
	}

	h = NewBcryptHasher(bcrypt.MinCost)
	if h.cost != bcrypt.MinCost {
		t.Errorf("expected cost %d, got %d", bcrypt.MinCost, h.cost)
	}
}
