package font

import "testing"
import "testing/fstest"

import "github.com/ekelse/btxt/geom"

func testSpecFile(name string) *fstest.MapFile {
	data := []byte(`{ "name": "` + name + `", "char": { "w": 8, "h": 10 }, "pad": { "x": 1, "y": 2 } }`)
	return &fstest.MapFile{ Data: data }
}

func TestLibraryAddGetRemove(t *testing.T) {
	lib := NewLibrary()
	if lib.Size() != 0 { t.Fatal("expected empty library") }

	metrics, err := (&Spec{ Char: geom.Size{ W: 8, H: 10 } }).Compile()
	if err != nil { t.Fatalf("unexpected compile error: %s", err) }

	err = lib.AddMetrics("medium", metrics)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !lib.HasMetrics("medium") { t.Fatal("expected metrics to be present") }
	if lib.GetMetrics("medium") != metrics { t.Fatal("GetMetrics returned wrong metrics") }
	if lib.GetMetrics("missing") != nil { t.Fatal("expected nil for missing metrics") }

	err = lib.AddMetrics("medium", metrics)
	if err != ErrAlreadyPresent { t.Fatalf("expected ErrAlreadyPresent, got %v", err) }

	if !lib.RemoveMetrics("medium") { t.Fatal("expected removal to succeed") }
	if lib.RemoveMetrics("medium") { t.Fatal("expected removal to fail") }
}

func TestLibraryParseAllFromFS(t *testing.T) {
	filesys := fstest.MapFS{
		"fonts/small.json" : testSpecFile("small"),
		"fonts/medium.json": testSpecFile("medium"),
		"fonts/dupe.json"  : testSpecFile("medium"), // name collision
		"fonts/notes.txt"  : &fstest.MapFile{ Data: []byte("not a spec") },
	}

	lib := NewLibrary()
	added, skipped, err := lib.ParseAllFromFS(filesys, "fonts")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if added != 2 { t.Fatalf("expected 2 added, got %d", added) }
	if skipped != 1 { t.Fatalf("expected 1 skipped, got %d", skipped) }
	if !lib.HasMetrics("small") || !lib.HasMetrics("medium") {
		t.Fatal("expected both fonts to be registered")
	}
}

func TestLibraryEachMetrics(t *testing.T) {
	lib := NewLibrary()
	_, err := lib.ParseFromBytes([]byte(`{ "name": "a", "char": { "w": 4, "h": 6 } }`))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_, err = lib.ParseFromBytes([]byte(`{ "name": "b", "char": { "w": 4, "h": 6 } }`))
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	seen := 0
	err = lib.EachMetrics(func(name string, metrics *Metrics) error {
		if metrics == nil { t.Fatal("nil metrics during EachMetrics") }
		seen += 1
		return nil
	})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if seen != 2 { t.Fatalf("expected 2 metrics, got %d", seen) }

	// early break must not report an error
	err = lib.EachMetrics(func(string, *Metrics) error { return ErrBreakEach })
	if err != nil { t.Fatalf("unexpected error on early break: %s", err) }
}
