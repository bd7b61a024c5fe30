package main

import (
	"os"
	"path/filepath"
	"testing"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/texture"
)

func TestParseArmor(t *testing.T) {
	got, err := parseArmor("helmet, boots")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != parts.Helmet || got[1] != parts.Boots {
		t.Errorf("parseArmor = %v", got)
	}
	if got, err := parseArmor(""); err != nil || len(got) != 0 {
		t.Errorf("parseArmor(\"\") = %v, %v", got, err)
	}
	if _, err := parseArmor("gloves"); err == nil {
		t.Error("expected error for unknown slot")
	}
}

func TestCollectEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"steve.png", "steve_cape.png", "iron_layer_1.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	index := texture.BuildIndex(dir)

	got, err := collectEntries(nil, index, map[string]bool{"iron_layer_1": true})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Key() != "steve" {
		t.Errorf("entries = %v", got)
	}

	got, err = collectEntries([]string{"Notch", "skins/alex.png"}, index, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Kind != request.EntryName || got[1].Kind != request.EntryPath {
		t.Errorf("entries = %v", got)
	}

	if _, err := collectEntries([]string{"not a name!"}, index, nil); err == nil {
		t.Error("expected error for invalid entry")
	}
}
