package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
)

//go:embed templates/panel.html
var templatesFS embed.FS

var pageTmpl = template.Must(
	template.New("panel.html").
		Funcs(template.FuncMap{"pathEscape": url.PathEscape}).
		ParseFS(templatesFS, "templates/panel.html"),
)

// DefaultBasePath is the mount point of the admin routes.
const DefaultBasePath = "/admin"

// ModalKind tells a confirmation from a notice.
type ModalKind int

const (
	ModalConfirm ModalKind = iota + 1
	ModalNotice
)

// Modal is a dialog drawn over the panel. For a confirmation, Action is the
// form path that repeats the pending request with the answer attached.
type Modal struct {
	Kind   ModalKind
	Text   string
	Action string
}

func (m Modal) IsConfirm() bool { return m.Kind == ModalConfirm }

// Overlay is page state owned by the host rather than the panel.
type Overlay struct {
	BasePath string
	Modal    *Modal
	// Notice is an inline message above the panel, e.g. for a stale button.
	Notice   string
}

type pageData struct {
	Base     string
	Mounted  bool
	M        panel.Messages
	Filter   string
	Status   string
	Bookings []models.Booking
	Modal    *Modal
	Notice   string
}

// Render writes the whole page as HTML.
func (d *Document) Render(w io.Writer, overlay Overlay) error {
	data := d.snapshot()
	data.Base = overlay.BasePath
	if data.Base == "" {
		data.Base = DefaultBasePath
	}
	data.Modal = overlay.Modal
	data.Notice = overlay.Notice

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render admin panel: %w", err)
	}
	return nil
}

func (d *Document) snapshot() pageData {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.layout.Messages
	if m.Heading == "" {
		m = m.WithDefaults()
	}
	data := pageData{
		Mounted: d.mounted,
		M:       m,
		Filter:  d.filterValue,
		Status:  d.status,
	}
	for _, r := range d.rows {
		data.Bookings = append(data.Bookings, r.Booking)
	}
	return data
}
