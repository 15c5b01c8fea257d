package keymap

// Binding describes a single key binding for dispatch and documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sheet", or "detent"
}

// Bindings contains all key bindings for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleInput, []string{"i"}, "Toggle input bar", "global"},

	// Sheet gestures
	{ActionDragUp, []string{"k", "up"}, "Drag sheet up", "sheet"},
	{ActionDragDown, []string{"j", "down"}, "Drag sheet down", "sheet"},
	{ActionRelease, []string{" "}, "Release drag", "sheet"},
	{ActionFlingUp, []string{"f"}, "Fling sheet up", "sheet"},
	{ActionFlingDown, []string{"d"}, "Fling sheet down", "sheet"},
	{ActionSettle, []string{"s"}, "Settle to nearest detent", "sheet"},

	// Detent navigation
	{ActionNextDetent, []string{"tab"}, "Animate to next detent", "detent"},
	{ActionPrevDetent, []string{"shift+tab"}, "Animate to previous detent", "detent"},
	{ActionExpand, []string{"G", "end"}, "Expand fully", "detent"},
	{ActionCollapse, []string{"g", "home"}, "Collapse fully", "detent"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
