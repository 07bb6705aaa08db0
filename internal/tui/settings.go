package tui

import "github.com/mmcdole/bookshelf/internal/adapter"

// settingsItem is one row of the Settings page
type settingsItem struct {
	Label  string
	Value  func(cfg adapter.Config) string
	Toggle func(cfg *adapter.Config)
}

var fontSizes = []string{adapter.FontSmall, adapter.FontMedium, adapter.FontLarge}

var settingsItems = []settingsItem{
	boolSetting("Notifications",
		func(c *adapter.Config) *bool { return &c.Preferences.Notifications }),
	boolSetting("Due date reminders",
		func(c *adapter.Config) *bool { return &c.Preferences.DueDateReminders }),
	boolSetting("New release alerts",
		func(c *adapter.Config) *bool { return &c.Preferences.NewReleaseAlerts }),
	boolSetting("Auto-download loans",
		func(c *adapter.Config) *bool { return &c.Preferences.AutoDownload }),
	boolSetting("Offline reading",
		func(c *adapter.Config) *bool { return &c.Preferences.OfflineReading }),
	{
		Label: "Reader font size",
		Value: func(cfg adapter.Config) string { return cfg.Reader.FontSize },
		Toggle: func(cfg *adapter.Config) {
			cfg.Reader.FontSize = nextFontSize(cfg.Reader.FontSize)
		},
	},
}

func boolSetting(label string, field func(*adapter.Config) *bool) settingsItem {
	return settingsItem{
		Label: label,
		Value: func(cfg adapter.Config) string {
			if *field(&cfg) {
				return "on"
			}
			return "off"
		},
		Toggle: func(cfg *adapter.Config) {
			p := field(cfg)
			*p = !*p
		},
	}
}

func nextFontSize(current string) string {
	for i, f := range fontSizes {
		if f == current {
			return fontSizes[(i+1)%len(fontSizes)]
		}
	}
	return adapter.FontMedium
}

// isResetRow reports whether the Settings cursor is on "Clear all data"
func (m Model) isResetRow() bool {
	return m.cursors[PageSettings] == len(settingsItems)
}
