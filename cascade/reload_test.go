package cascade_test

import (
	"testing"

	"go.uber.org/zap"

	"uicss/cascade"
	"uicss/css"
)

func TestReloadFromAssets(t *testing.T) {
	cache := css.NewCache(zap.NewNop())
	texts := map[css.Handle]string{
		"theme": `button { background: blue }`,
	}
	provider := func(h css.Handle) (string, bool) {
		text, ok := texts[h]
		return text, ok
	}
	node := cascade.NodeIdentity{Tag: "button"}

	sheet := cache.GetOrParse("theme", provider)
	ui := cascade.Filter(sheet, "theme", node)
	if ui.Effective().Background.B != 0xff {
		t.Fatalf("initial background = %s, want blue", ui.Effective().Background)
	}

	// overlay override active when the source changes
	override := css.Style{}
	override.Apply("background", css.ParseValue("green"))
	ui.ActiveStyle = &override

	texts["theme"] = `button { background: red; width: 10px }
@keyframes pulse { from { opacity: 1 } to { opacity: 0 } }`

	cascade.ReloadFromAssets(cache, ui, node, provider)

	if ui.ActiveStyle != nil {
		t.Error("reload must drop any active override")
	}
	if ui.Effective().Background.R != 0xff {
		t.Errorf("background = %s, want reloaded red", ui.Effective().Background)
	}
	if !ui.Effective().Width.IsSet() {
		t.Error("new declarations missing after reload")
	}
	if len(ui.Keyframes["pulse"]) != 2 {
		t.Error("keyframes missing after reload")
	}
	if ui.Source != "theme" {
		t.Errorf("source handle changed to %q", ui.Source)
	}
	if cache.Len() != 1 {
		t.Errorf("cache size = %d, want the reparsed entry only", cache.Len())
	}
}

func TestReloadFromAssets_MissingAsset(t *testing.T) {
	cache := css.NewCache(zap.NewNop())
	texts := map[css.Handle]string{"theme": `button { background: blue }`}
	provider := func(h css.Handle) (string, bool) {
		text, ok := texts[h]
		return text, ok
	}
	node := cascade.NodeIdentity{Tag: "button"}

	sheet := cache.GetOrParse("theme", provider)
	ui := cascade.Filter(sheet, "theme", node)

	delete(texts, "theme")
	cascade.ReloadFromAssets(cache, ui, node, provider)

	if len(ui.Styles) != 0 {
		t.Error("reload with missing asset must yield an empty style")
	}
	if cache.Len() != 0 {
		t.Error("missing asset must not repopulate the cache")
	}
}

func TestReloadFromAssets_NilArguments(t *testing.T) {
	cascade.ReloadFromAssets(nil, nil, cascade.NodeIdentity{}, nil) // must not panic

	cache := css.NewCache(zap.NewNop())
	cascade.ReloadFromAssets(cache, nil, cascade.NodeIdentity{}, nil)
	if cache.Len() != 0 {
		t.Error("nil style must leave the cache untouched")
	}
}
