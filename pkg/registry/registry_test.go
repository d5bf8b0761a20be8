package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stagehand-dev/stagehand/pkg/errors"
)

// testEntry is a simple type for testing
type testEntry struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testEntry]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[testEntry]()

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("main", testEntry{ID: 1, Name: "main"})

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testEntry{ID: 2})

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("main", testEntry{ID: 3})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[testEntry]()
	_ = reg.Register("main", testEntry{ID: 1, Name: "main"})

	t.Run("get existing item", func(t *testing.T) {
		item, err := reg.Get("main")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}
		if item.ID != 1 {
			t.Errorf("Get() ID = %d, want 1", item.ID)
		}
	})

	t.Run("get missing item", func(t *testing.T) {
		_, err := reg.Get("missing")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() missing item should return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	reg := New[testEntry]()
	_ = reg.Register("zeta", testEntry{})
	_ = reg.Register("alpha", testEntry{})
	_ = reg.Register("mid", testEntry{})

	names := reg.List()

	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestHas(t *testing.T) {
	reg := New[testEntry]()
	_ = reg.Register("main", testEntry{})

	if !reg.Has("main") {
		t.Error("Has() should be true for registered item")
	}
	if reg.Has("other") {
		t.Error("Has() should be false for unregistered item")
	}
}

func TestConcurrentRegister(t *testing.T) {
	reg := New[testEntry]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("entry-%d", n), testEntry{ID: n})
		}(i)
	}
	wg.Wait()

	if reg.Count() != 50 {
		t.Errorf("Count() = %d, want 50", reg.Count())
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := New[testEntry]()
	MustRegister(reg, "main", testEntry{})

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()
	MustRegister(reg, "main", testEntry{})
}
