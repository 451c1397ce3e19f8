package alarms

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewFileStorage(t.TempDir()))
}

func TestStoreAddAndListSorted(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	evening := New(21, 0, "wind down", now)
	morning := New(7, 30, "wake up", now)

	if err := store.Add(evening); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := store.Add(morning); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	list, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].ID != morning.ID {
		t.Errorf("list[0] = %s, want the 07:30 alarm first", list[0].TimeOfDay())
	}
}

func TestStoreToggle(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	alarm := New(7, 30, "wake up", now)
	if err := store.Add(alarm); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	later := now.Add(time.Hour)
	toggled, err := store.Toggle(alarm.ID, later)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if toggled.Enabled {
		t.Error("Toggle() left alarm enabled, want disabled")
	}
	if !toggled.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", toggled.UpdatedAt, later)
	}

	// Persisted state matches.
	got, err := store.Get(alarm.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Enabled {
		t.Error("persisted alarm still enabled after toggle")
	}
}

func TestStoreUpdateMissingAlarm(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	ghost := New(7, 30, "ghost", now)
	if err := store.Update(ghost, now); err == nil {
		t.Fatal("expected error updating a missing alarm")
	}
}

func TestStoreNext(t *testing.T) {
	store := newTestStore(t)
	// Thursday 10:00
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	passed := New(7, 30, "passed today", now)
	soon := New(12, 0, "lunch", now)
	disabled := New(11, 0, "off", now)
	disabled.Enabled = false

	for _, a := range []*Alarm{passed, soon, disabled} {
		if err := store.Add(a); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	next, at, err := store.Next(now)
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if next == nil || next.ID != soon.ID {
		t.Fatalf("Next() = %v, want the 12:00 alarm", next)
	}
	want := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("Next() fires at %v, want %v", at, want)
	}
}

func TestStoreNextNoEnabledAlarms(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	next, _, err := store.Next(now)
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if next != nil {
		t.Errorf("Next() = %+v, want nil for empty store", next)
	}
}
