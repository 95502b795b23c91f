package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}

	if err := m.Set("schedule:1", "payload"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, ok := m.Get("schedule:1")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if value != "payload" {
		t.Errorf("Get = %q, expected %q", value, "payload")
	}

	if err := m.Set("schedule:1", "updated"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, _ = m.Get("schedule:1")
	if value != "updated" {
		t.Errorf("Get after overwrite = %q, expected %q", value, "updated")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, expected 1", m.Len())
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			if err := m.Set(key, fmt.Sprintf("value-%d", n)); err != nil {
				t.Errorf("Set returned error: %v", err)
			}
			m.Get(key)
		}(i)
	}
	wg.Wait()

	if m.Len() != 10 {
		t.Errorf("Len = %d, expected 10", m.Len())
	}
}
