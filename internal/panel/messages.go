package panel

// Messages holds every user-visible text of the panel. Empty fields fall back to
// the defaults, so a partial TOML table only overrides what it names.
type Messages struct {
	Heading      string `toml:"heading"`
	FilterLabel  string `toml:"filter_label"`
	ApplyButton  string `toml:"apply_button"`
	ClearButton  string `toml:"clear_button"`
	CloseButton  string `toml:"close_button"`
	ReopenButton string `toml:"reopen_button"`
	PanelClosed  string `toml:"panel_closed"`

	Loading   string `toml:"loading"`
	Empty     string `toml:"empty"`
	LoadError string `toml:"load_error"`

	NameLabel     string `toml:"name_label"`
	PhoneLabel    string `toml:"phone_label"`
	DateLabel     string `toml:"date_label"`
	TimeLabel     string `toml:"time_label"`
	GuestsLabel   string `toml:"guests_label"`
	DurationLabel string `toml:"duration_label"`
	HoursSuffix   string `toml:"hours_suffix"`
	StatusLabel   string `toml:"status_label"`

	HideButton   string `toml:"hide_button"`
	DeleteButton string `toml:"delete_button"`
	EditButton   string `toml:"edit_button"`

	ConfirmHide        string `toml:"confirm_hide"`
	ConfirmDelete      string `toml:"confirm_delete"`
	ConfirmYes         string `toml:"confirm_yes"`
	ConfirmNo          string `toml:"confirm_no"`
	NoticeOK           string `toml:"notice_ok"`
	EditNotImplemented string `toml:"edit_not_implemented"`
	StaleControl       string `toml:"stale_control"`
}

// DefaultMessages returns the built-in English texts.
func DefaultMessages() Messages {
	return Messages{
		Heading:      "Administrator panel",
		FilterLabel:  "Filter by date:",
		ApplyButton:  "Apply",
		ClearButton:  "Show all upcoming",
		CloseButton:  "Close panel",
		ReopenButton: "Open admin panel",
		PanelClosed:  "The admin panel is closed.",

		Loading:   "Loading...",
		Empty:     "No bookings",
		LoadError: "Load error",

		NameLabel:     "Name",
		PhoneLabel:    "Phone",
		DateLabel:     "Date",
		TimeLabel:     "Time",
		GuestsLabel:   "Guests",
		DurationLabel: "Duration",
		HoursSuffix:   "h.",
		StatusLabel:   "Status",

		HideButton:   "Hide",
		DeleteButton: "Delete",
		EditButton:   "Edit",

		ConfirmHide:        "Hide this booking (status cancelled)?",
		ConfirmDelete:      "Delete this booking permanently?",
		ConfirmYes:         "Yes",
		ConfirmNo:          "No",
		NoticeOK:           "OK",
		EditNotImplemented: "Editing is not implemented yet.",
		StaleControl:       "That booking is no longer in the list.",
	}
}

// WithDefaults fills every empty field from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Heading, d.Heading)
	fill(&m.FilterLabel, d.FilterLabel)
	fill(&m.ApplyButton, d.ApplyButton)
	fill(&m.ClearButton, d.ClearButton)
	fill(&m.CloseButton, d.CloseButton)
	fill(&m.ReopenButton, d.ReopenButton)
	fill(&m.PanelClosed, d.PanelClosed)
	fill(&m.Loading, d.Loading)
	fill(&m.Empty, d.Empty)
	fill(&m.LoadError, d.LoadError)
	fill(&m.NameLabel, d.NameLabel)
	fill(&m.PhoneLabel, d.PhoneLabel)
	fill(&m.DateLabel, d.DateLabel)
	fill(&m.TimeLabel, d.TimeLabel)
	fill(&m.GuestsLabel, d.GuestsLabel)
	fill(&m.DurationLabel, d.DurationLabel)
	fill(&m.HoursSuffix, d.HoursSuffix)
	fill(&m.StatusLabel, d.StatusLabel)
	fill(&m.HideButton, d.HideButton)
	fill(&m.DeleteButton, d.DeleteButton)
	fill(&m.EditButton, d.EditButton)
	fill(&m.ConfirmHide, d.ConfirmHide)
	fill(&m.ConfirmDelete, d.ConfirmDelete)
	fill(&m.ConfirmYes, d.ConfirmYes)
	fill(&m.ConfirmNo, d.ConfirmNo)
	fill(&m.NoticeOK, d.NoticeOK)
	fill(&m.EditNotImplemented, d.EditNotImplemented)
	fill(&m.StaleControl, d.StaleControl)
	return m
}
