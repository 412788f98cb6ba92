package platforms

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsCatalog(t *testing.T) {
	reg := Defaults()

	tests := []struct {
		name              string
		wantChronological bool
		wantExtension     bool
	}{
		{"linkedin", true, true},
		{"x", true, false},
		{"google_maps", false, false},
		{"yelp", false, false},
	}

	for _, tt := range tests {
		p, ok := reg.Get(tt.name)
		if !ok {
			t.Fatalf("expected %s in default catalog", tt.name)
		}
		if p.IsChronological != tt.wantChronological {
			t.Errorf("%s: IsChronological = %v, want %v", tt.name, p.IsChronological, tt.wantChronological)
		}
		if p.RequiresExtensionSync != tt.wantExtension {
			t.Errorf("%s: RequiresExtensionSync = %v, want %v", tt.name, p.RequiresExtensionSync, tt.wantExtension)
		}
	}

	if _, ok := reg.Get("myspace"); ok {
		t.Fatal("did not expect unknown platform in catalog")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	content := `platforms:
  - name: linkedin
    is_chronological: true
    requires_extension_sync: true
  - name: directory_site
    is_chronological: false
    requires_extension_sync: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !reg.RequiresExtension("linkedin") {
		t.Error("expected linkedin to require the extension")
	}
	if reg.AnyChronological([]string{"directory_site"}) {
		t.Error("expected directory_site to be non-chronological")
	}
	if !reg.AnyChronological([]string{"directory_site", "linkedin"}) {
		t.Error("expected mixed set to count as chronological")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	reg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := reg.Get("linkedin"); !ok {
		t.Fatal("expected defaults when no file is configured")
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	if err := os.WriteFile(path, []byte("platforms: []\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
