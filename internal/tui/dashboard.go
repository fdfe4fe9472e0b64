package tui

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/vault"
	"github.com/MKhiriev/go-medi-vault/models"
)

// readFile is replaced in tests.
var readFile = os.ReadFile

type uploadDoneMsg struct {
	record models.Record
	err    error
}

// DashboardModel is the unlocked home screen: entity counts, the records
// list and the sync, lock and account actions.
type DashboardModel struct {
	ctx      context.Context
	vault    Vault
	services *service.ClientServices
	logger   *logger.Logger

	session *vault.Session

	records   []models.Record
	vitals    int
	reminders int
	idx       int
	loading   bool

	account  models.AccountSession
	signedIn bool

	syncing bool
	spinner spinner.Model

	opened *models.Document

	uploading    bool
	uploadInputs []textinput.Model
	uploadFocus  int

	showICE bool
	ice     models.ICEData

	status string
	errMsg string
}

func NewDashboardModel(ctx context.Context, v Vault, services *service.ClientServices, logger *logger.Logger) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:      ctx,
		vault:    v,
		services: services,
		logger:   logger,
		spinner:  s,
		loading:  true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.cmdLoad()
}

// CapturesText reports whether the upload form is open.
func (m *DashboardModel) CapturesText() bool {
	return m.uploading
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockedMsg:
		m.session = msg.session
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case dashboardReloadMsg:
		m.loading = true
		return m, m.cmdLoad()
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.records = msg.records
		m.vitals = msg.vitals
		m.reminders = msg.reminders
		m.account = msg.account
		m.signedIn = msg.signedIn
		if m.idx >= len(m.records) {
			m.idx = len(m.records) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if failed := len(msg.push.Failed) + len(msg.pull.Failed); failed > 0 {
			m.logger.Warn().Int("failed", failed).Msg("manual sync finished with failures")
		}
		m.status = syncSummary(msg.push, msg.pull)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case accountDoneMsg:
		m.status = fmt.Sprintf("Signed in as %s.", msg.session.Email)
		if len(msg.pulled.Applied) > 0 {
			m.status += fmt.Sprintf(" Pulled %d item(s).", len(msg.pulled.Applied))
		}
		m.loading = true
		return m, m.cmdLoad()
	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Signed out. Local data was kept."
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case documentOpenedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		doc := msg.document
		m.opened = &doc
		m.errMsg = ""
		return m, nil
	case uploadDoneMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("document upload failed")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.closeUpload()
		m.status = fmt.Sprintf("%q encrypted and saved.", msg.record.Name)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case iceLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.ice = msg.card
		m.showICE = true
		return m, nil
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.uploading {
			return m.updateUploadInputs(msg)
		}
		return m, nil
	}

	if m.uploading {
		return m.updateUpload(keyMsg)
	}
	if m.opened != nil || m.showICE {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
			m.closeDocument()
			m.showICE = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.lock):
		return m, m.lock()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if rec, ok := m.current(); ok {
			return m, m.cmdOpen(rec.ID)
		}
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.emergency):
		return m, m.cmdLoadICE()
	case key.Matches(keyMsg, keys.account):
		if !m.signedIn {
			return m, func() tea.Msg { return NavigateTo{Page: pageAccount} }
		}
	case key.Matches(keyMsg, keys.logout):
		if m.signedIn {
			return m, m.cmdLogout()
		}
	case keyMsg.String() == "u":
		m.openUpload()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.showICE {
		return renderICE(m.ice)
	}
	if m.opened != nil {
		return renderDocument(*m.opened)
	}
	if m.uploading {
		return m.viewUpload()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Records: %d │ Vitals: %d │ Reminders: %d\n", len(m.records), m.vitals, m.reminders)
	if m.signedIn {
		fmt.Fprintf(&b, "Account: %s", m.account.Email)
	} else {
		b.WriteString("Account: not signed in, sync is off")
	}
	if m.syncing {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" syncing")
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.records) == 0:
		b.WriteString("No records yet. Press u to upload a document.\n")
	default:
		for i, rec := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-28s %-10s %-22s %s\n",
				cursor,
				fitText(rec.Name, 28),
				valueOrDash(rec.Date),
				fitText(rec.Category, 22),
				humanSize(rec.Size),
			)
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: open │ u: upload │ s: sync │ e: emergency │ l: lock │ q: quit"
	if m.signedIn {
		hotKeys += " │ x: sign out"
	} else {
		hotKeys += " │ a: account"
	}

	return renderPage("MEDIVAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) current() (models.Record, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

// lock closes the session and returns to the lock screen. Decrypted content
// held for display is dropped first.
func (m *DashboardModel) lock() tea.Cmd {
	m.closeDocument()
	m.closeUpload()
	m.session = nil
	m.records = nil
	m.status = ""
	m.errMsg = ""
	m.vault.Lock()

	return func() tea.Msg { return NavigateTo{Page: pageLock, Payload: lockedMsg{}} }
}

func (m *DashboardModel) closeDocument() {
	if m.opened == nil {
		return
	}
	clear(m.opened.Data)
	m.opened = nil
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.services
	return func() tea.Msg {
		records, err := svc.Documents.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		vitals, err := svc.Vitals.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		reminders, err := svc.Reminders.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		account, signedIn := svc.Account.Current(ctx)

		return dashboardLoadedMsg{
			records:   records,
			vitals:    len(vitals),
			reminders: len(reminders),
			account:   account,
			signedIn:  signedIn,
		}
	}
}

func (m *DashboardModel) cmdSync() tea.Cmd {
	ctx, sync := m.ctx, m.services.Sync
	return func() tea.Msg {
		push := sync.SyncToCloud(ctx)
		pull := sync.PullFromCloud(ctx)
		return syncDoneMsg{push: push, pull: pull}
	}
}

func (m *DashboardModel) cmdOpen(id int64) tea.Cmd {
	ctx, docs, session := m.ctx, m.services.Documents, m.session
	return func() tea.Msg {
		if session == nil {
			return documentOpenedMsg{err: vault.ErrSessionClosed}
		}
		doc, err := docs.Open(ctx, session, id)
		return documentOpenedMsg{document: doc, err: err}
	}
}

func (m *DashboardModel) cmdLoadICE() tea.Cmd {
	ctx, emergency := m.ctx, m.services.Emergency
	return func() tea.Msg {
		card, err := emergency.Get(ctx)
		return iceLoadedMsg{card: card, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx, account := m.ctx, m.services.Account
	return func() tea.Msg {
		return loggedOutMsg{err: account.Logout(ctx)}
	}
}

// syncSummary is the one-line outcome of a push followed by a pull.
func syncSummary(push, pull models.SyncReport) string {
	if push.Skipped && pull.Skipped {
		return "Not signed in. Nothing was synced."
	}

	failed := len(push.Failed) + len(pull.Failed)
	summary := fmt.Sprintf("Sync finished: %d pushed, %d pulled.", len(push.Applied), len(pull.Applied))
	if failed > 0 {
		summary += fmt.Sprintf(" %d item(s) failed and will be retried.", failed)
	}
	return summary
}

func renderDocument(doc models.Document) string {
	rec := doc.Record

	var b strings.Builder
	b.WriteString("Name     │ " + valueOrDash(rec.Name) + "\n")
	b.WriteString("Category │ " + valueOrDash(rec.Category) + "\n")
	b.WriteString("Date     │ " + valueOrDash(rec.Date) + "\n")
	b.WriteString("Doctor   │ " + valueOrDash(rec.Doctor) + "\n")
	b.WriteString("Hospital │ " + valueOrDash(rec.Hospital) + "\n")
	b.WriteString("Type     │ " + valueOrDash(doc.MIMEType) + "\n")
	b.WriteString("Size     │ " + humanSize(int64(len(doc.Data))))

	return renderPage("DOCUMENT", b.String(), "esc: close")
}

// ─────────────────────────────────────────────
// upload form
// ─────────────────────────────────────────────

const (
	uploadFieldPath = iota
	uploadFieldName
	uploadFieldCategory
	uploadFieldDate
)

func (m *DashboardModel) openUpload() {
	path := textinput.New()
	path.Placeholder = "/path/to/document.pdf"
	path.Width = 48
	path.Focus()

	name := textinput.New()
	name.Placeholder = "name (file name when empty)"
	name.Width = 48

	category := textinput.New()
	category.Placeholder = models.CategoryOther
	category.Width = 48

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD (today when empty)"
	date.CharLimit = 10
	date.Width = 48

	m.uploadInputs = []textinput.Model{path, name, category, date}
	m.uploadFocus = uploadFieldPath
	m.uploading = true
	m.errMsg = ""
	m.status = ""
}

func (m *DashboardModel) closeUpload() {
	m.uploading = false
	m.uploadInputs = nil
}

func (m *DashboardModel) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeUpload()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.uploadInputs[m.uploadFocus].Blur()
		m.uploadFocus = (m.uploadFocus + 1) % len(m.uploadInputs)
		m.uploadInputs[m.uploadFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.uploadInputs[m.uploadFocus].Blur()
		m.uploadFocus = (m.uploadFocus - 1 + len(m.uploadInputs)) % len(m.uploadInputs)
		m.uploadInputs[m.uploadFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.uploadInputs[uploadFieldPath].Value())
		if path == "" {
			m.errMsg = "Choose a file to upload."
			return m, nil
		}
		return m, m.cmdUpload(path, models.DocumentUpload{
			Name:     m.uploadInputs[uploadFieldName].Value(),
			Category: strings.TrimSpace(m.uploadInputs[uploadFieldCategory].Value()),
			Date:     strings.TrimSpace(m.uploadInputs[uploadFieldDate].Value()),
		})
	}

	return m.updateUploadInputs(msg)
}

func (m *DashboardModel) updateUploadInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.uploadInputs[m.uploadFocus], cmd = m.uploadInputs[m.uploadFocus].Update(msg)
	return m, cmd
}

func (m *DashboardModel) viewUpload() string {
	labels := []string{"File", "Name", "Category", "Date"}

	var b strings.Builder
	for i, in := range m.uploadInputs {
		fmt.Fprintf(&b, "%-8s │ %s\n", labels[i], in.View())
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UPLOAD DOCUMENT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: encrypt and save │ esc: cancel")
}

// cmdUpload reads the file, detects its MIME type and stores it encrypted
// under the open session.
func (m *DashboardModel) cmdUpload(path string, upload models.DocumentUpload) tea.Cmd {
	ctx, docs, session := m.ctx, m.services.Documents, m.session
	return func() tea.Msg {
		if session == nil {
			return uploadDoneMsg{err: vault.ErrSessionClosed}
		}

		data, err := readFile(path)
		if err != nil {
			return uploadDoneMsg{err: fmt.Errorf("error reading file: %w", err)}
		}
		defer clear(data)

		upload.FileName = filepath.Base(path)
		upload.Data = data
		upload.MIMEType = detectMIMEType(path, data)

		rec, err := docs.Upload(ctx, session, upload)
		return uploadDoneMsg{record: rec, err: err}
	}
}

func detectMIMEType(fileName string, data []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return ""
	}
	return mediaType
}
