package model

import (
	"encoding/json"
	"testing"
)

func TestJSONBValueAndScan(t *testing.T) {
	original := JSONB{"field": "effort", "points": 5}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	data, ok := value.([]byte)
	if !ok {
		t.Fatalf("expected []byte value, got %T", value)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal value error: %v", err)
	}

	if decoded["field"] != "effort" {
		t.Fatalf("expected field effort, got %v", decoded["field"])
	}

	var scanned JSONB
	if err := scanned.Scan(data); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if scanned["field"] != "effort" {
		t.Fatalf("expected scanned field effort, got %q", scanned["field"])
	}
}

func TestJSONBScanString(t *testing.T) {
	// sqlite hands jsonb columns back as TEXT.
	var scanned JSONB
	if err := scanned.Scan(`{"sprint":"Sprint 3"}`); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if scanned["sprint"] != "Sprint 3" {
		t.Fatalf("expected Sprint 3, got %v", scanned["sprint"])
	}
}

func TestJSONBGormDataType(t *testing.T) {
	value := JSONB{"ok": true}
	if value.GormDataType() != "jsonb" {
		t.Fatalf("expected jsonb data type, got %q", value.GormDataType())
	}
}
