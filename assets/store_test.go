package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"uicss/assets"
)

func TestHandleForPath_Stable(t *testing.T) {
	a := assets.HandleForPath("themes/dark.css")
	b := assets.HandleForPath("themes/dark.css")
	if a != b {
		t.Errorf("same path produced different handles: %q / %q", a, b)
	}
	// path normalization folds into the same handle
	if c := assets.HandleForPath("./themes//dark.css"); c != a {
		t.Errorf("equivalent path produced different handle: %q / %q", c, a)
	}
	if d := assets.HandleForPath("themes/light.css"); d == a {
		t.Error("different paths produced the same handle")
	}
}

func TestNewHandle_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h := string(assets.NewHandle())
		if seen[h] {
			t.Fatalf("duplicate handle %q", h)
		}
		seen[h] = true
	}
}

func TestStore_PutGetForget(t *testing.T) {
	s := assets.NewStore(zap.NewNop())
	h := assets.NewHandle()

	if _, ok := s.Get(h); ok {
		t.Error("empty store reported text")
	}

	s.Put(h, "p { color: red }")
	text, ok := s.Get(h)
	if !ok || text != "p { color: red }" {
		t.Errorf("Get = %q, %v", text, ok)
	}

	s.Put(h, "p { color: blue }")
	if text, _ := s.Get(h); text != "p { color: blue }" {
		t.Error("Put must replace previous text")
	}

	s.Forget(h)
	if _, ok := s.Get(h); ok {
		t.Error("forgotten handle still resolves")
	}
}

func TestStore_Provider(t *testing.T) {
	s := assets.NewStore(zap.NewNop())
	h := assets.NewHandle()
	s.Put(h, "div {}")

	provider := s.Provider()
	if text, ok := provider(h); !ok || text != "div {}" {
		t.Errorf("provider = %q, %v", text, ok)
	}
	if _, ok := provider("missing"); ok {
		t.Error("provider resolved an unknown handle")
	}
}

func TestStore_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.css")
	if err := os.WriteFile(path, []byte(`button { width: 10px }`), 0o600); err != nil {
		t.Fatal(err)
	}

	s := assets.NewStore(zap.NewNop())
	h, err := s.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if h != assets.HandleForPath(path) {
		t.Error("file handle must derive from path")
	}
	if text, ok := s.Get(h); !ok || text != `button { width: 10px }` {
		t.Errorf("stored text = %q, %v", text, ok)
	}
}

func TestStore_LoadFileRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-sheet.css")
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		t.Fatal(err)
	}

	s := assets.NewStore(zap.NewNop())
	if _, err := s.LoadFile(path); err == nil {
		t.Error("binary payload must be rejected")
	}
	if _, ok := s.Get(assets.HandleForPath(path)); ok {
		t.Error("rejected payload must not be stored")
	}
}

func TestStore_LoadFileMissing(t *testing.T) {
	s := assets.NewStore(zap.NewNop())
	if _, err := s.LoadFile(filepath.Join(t.TempDir(), "nope.css")); err == nil {
		t.Error("missing file must error")
	}
}
