package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvplot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.Port != 8080 || c.Host != "localhost" || c.MaxUploadMB != 10 || c.MaxRows != 10000 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.maxUploadBytes() != 10<<20 {
		t.Errorf("maxUploadBytes = %d, want %d", c.maxUploadBytes(), 10<<20)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeTempConfig(t, "port: 9000\nhost: 0.0.0.0\nmaxUploadMB: 2\nmaxRows: 50\n")
	c, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.Port != 9000 || c.Host != "0.0.0.0" || c.MaxUploadMB != 2 || c.MaxRows != 50 {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestLoadConfigScaleBuckets(t *testing.T) {
	t.Cleanup(func() { scaleBuckets = defaultScaleBuckets })

	path := writeTempConfig(t, `
scaleBuckets:
  - atLeast: 500
    factor: 0.001
  - atLeast: 5
    factor: 0.1
`)
	if _, err := loadConfig(path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := DefaultScale(600, "v"); got != Scale1000th {
		t.Errorf("DefaultScale(600) = %v, want 0.001 from override table", got)
	}
	if got := DefaultScale(400, "v"); got != Scale10th {
		t.Errorf("DefaultScale(400) = %v, want 0.1 from override table", got)
	}
	if got := DefaultScale(4, "v"); got != ScaleNone {
		t.Errorf("DefaultScale(4) = %v, want 1", got)
	}
}

func TestLoadConfigRejectsBadBuckets(t *testing.T) {
	t.Cleanup(func() { scaleBuckets = defaultScaleBuckets })

	cases := []string{
		// factor outside the enumerated set
		"scaleBuckets:\n  - atLeast: 10\n    factor: 0.5\n",
		// non-positive bound
		"scaleBuckets:\n  - atLeast: 0\n    factor: 0.1\n",
		// bounds not decreasing
		"scaleBuckets:\n  - atLeast: 10\n    factor: 0.1\n  - atLeast: 20\n    factor: 0.01\n",
	}
	for _, body := range cases {
		path := writeTempConfig(t, body)
		if _, err := loadConfig(path); err == nil {
			t.Errorf("loadConfig accepted bad buckets:\n%s", body)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicit missing config path")
	}
}
