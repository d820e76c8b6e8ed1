package cascade

import (
	"uicss/css"
)

// ReloadFromAssets drops the cached parse for the style's source, reparses
// through the provider and re-runs the filter with the node's captured
// selector identity. The UiStyle is replaced in place: nothing from the
// prior parse survives, including any active overlay override.
//
// The engine keeps no record of a node's identity between calls, so the
// caller must pass the same tag/id/classes the node currently exposes.
func ReloadFromAssets(cache *css.Cache, ui *UiStyle, node NodeIdentity, text css.TextProvider) {
	if cache == nil || ui == nil {
		return
	}
	cache.Invalidate(ui.Source)
	sheet := cache.GetOrParse(ui.Source, text)
	*ui = *Filter(sheet, ui.Source, node)
}
