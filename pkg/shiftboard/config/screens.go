package config

// SummaryScreen is the id of the fleet summary screen.
const SummaryScreen = "summary"

// EffectiveScreens returns the rotation order: the configured order (or the
// summary followed by every sector) without unknown ids or duplicates.
// It never returns an empty list.
func (d *Dashboard) EffectiveScreens() []string {
	known := make(map[string]bool, len(d.Sectors)+1)
	known[SummaryScreen] = true
	for _, s := range d.Sectors {
		known[s.ID] = true
	}

	base := d.ScreensOrder
	if len(base) == 0 {
		base = []string{SummaryScreen}
		for _, s := range d.Sectors {
			base = append(base, s.ID)
		}
	}

	seen := make(map[string]bool, len(base))
	screens := make([]string, 0, len(base))
	for _, id := range base {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		screens = append(screens, id)
	}

	if len(screens) == 0 {
		return []string{SummaryScreen}
	}
	return screens
}
