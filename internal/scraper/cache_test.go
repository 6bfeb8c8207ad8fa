package scraper

import (
	"testing"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
)

func TestCacheKey(t *testing.T) {
	if got := CacheKey("Myntra", "White Shirt"); got != "myntra_white shirt" {
		t.Errorf("CacheKey = %q", got)
	}
}

func TestProductCache_SetGet(t *testing.T) {
	cache := NewProductCache(time.Minute, time.Minute)
	defer cache.Stop()

	products := []model.Product{{ID: "1", Title: "Shirt"}}
	cache.Set("myntra_shirt", products)

	got, ok := cache.Get("myntra_shirt")
	if !ok || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	if _, ok := cache.Get("zara_shirt"); ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestProductCache_Expiry(t *testing.T) {
	cache := NewProductCache(20*time.Millisecond, time.Hour)
	defer cache.Stop()

	cache.Set("k", []model.Product{{ID: "1"}})
	time.Sleep(50 * time.Millisecond)

	if _, ok := cache.Get("k"); ok {
		t.Error("expired entry must miss even before the janitor sweeps")
	}
}

func TestProductCache_JanitorSweeps(t *testing.T) {
	cache := NewProductCache(10*time.Millisecond, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("k", []model.Product{{ID: "1"}})
	if cache.Len() != 1 {
		t.Fatalf("Len = %d", cache.Len())
	}

	time.Sleep(80 * time.Millisecond)
	if cache.Len() != 0 {
		t.Errorf("Len = %d after sweep, want 0", cache.Len())
	}
}

func TestProductCache_Clear(t *testing.T) {
	cache := NewProductCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("a", nil)
	cache.Set("b", nil)
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len = %d after Clear", cache.Len())
	}
}

func TestProductCache_StopIsIdempotent(t *testing.T) {
	cache := NewProductCache(time.Minute, time.Minute)
	cache.Stop()
	cache.Stop()
}
