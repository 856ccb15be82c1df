package life

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempOptions(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "golife")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "options.yaml")
	if err := ioutil.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionsOverlaysOnlyPresentKeys(t *testing.T) {
	o := DefaultOptions
	path := writeTempOptions(t, "width: 60\ninterval: 25ms\nautoStart: true\n")
	if err := LoadOptions(path, &o); err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if o.Width != 60 {
		t.Errorf("width: got %d, want 60", o.Width)
	}
	if o.Interval != 25*time.Millisecond {
		t.Errorf("interval: got %v, want 25ms", o.Interval)
	}
	if !o.AutoStart {
		t.Error("autoStart not applied")
	}
	//keys absent from the file keep the defaults
	if o.Height != DefHeight {
		t.Errorf("height: got %d, want the default %d", o.Height, DefHeight)
	}
	if o.MinSeedCells != DefMinSeedCells || o.MaxSeedCells != DefMaxSeedCells {
		t.Errorf("seed range: got [%d, %d], want the defaults", o.MinSeedCells, o.MaxSeedCells)
	}
}

func TestLoadOptionsRejectsBadInterval(t *testing.T) {
	o := DefaultOptions
	path := writeTempOptions(t, "interval: fast\n")
	if err := LoadOptions(path, &o); err == nil {
		t.Error("malformed interval accepted")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	o := DefaultOptions
	if err := LoadOptions("/nonexistent/options.yaml", &o); err == nil {
		t.Error("missing file accepted")
	}
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		ok     bool
	}{
		{"defaults", func(*Options) {}, true},
		{"zero width", func(o *Options) { o.Width = 0 }, false},
		{"negative height", func(o *Options) { o.Height = -2 }, false},
		{"inverted seed range", func(o *Options) { o.MinSeedCells = 10; o.MaxSeedCells = 5 }, false},
		{"negative seed minimum", func(o *Options) { o.MinSeedCells = -1 }, false},
		{"negative interval", func(o *Options) { o.Interval = -time.Millisecond }, false},
		{"zero interval", func(o *Options) { o.Interval = 0 }, true},
	}
	for _, tc := range cases {
		o := DefaultOptions
		tc.mutate(&o)
		err := o.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: accepted", tc.name)
		}
	}
}
