package models

import "testing"

func TestStringListScan(t *testing.T) {
	var list StringList
	if err := list.Scan([]byte(`["GPS","Leather Seats"]`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(list) != 2 || list[0] != "GPS" {
		t.Fatalf("unexpected list: %v", list)
	}

	if err := list.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if list != nil {
		t.Fatalf("nil scan should reset the list, got %v", list)
	}

	if err := list.Scan(42); err == nil {
		t.Fatal("expected error scanning an int")
	}
}

func TestStringListValueNeverNull(t *testing.T) {
	var list StringList
	v, err := list.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Fatalf("nil list should serialize as [], got %s", v)
	}
}
