package models

// Notice kinds
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a transient line shown in the status area.
type Notice struct {
	Text string
	Kind string
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Width     int      // Terminal width
	Height    int      // Terminal height
	Status    string   // Status bar text
	Locale    string   // Locale currently rendered
	Notice    Notice   // Current transient notice
	NoticeSeq int      // Bumped per notice so stale clear ticks are ignored
	History   []Notice // Recent notices, newest last
	Quitting  bool
}

const maxHistory = 5

// PushNotice records n as the current notice and appends it to the history.
func (m *AppModel) PushNotice(n Notice) int {
	m.Notice = n
	m.NoticeSeq++
	m.History = append(m.History, n)
	if len(m.History) > maxHistory {
		m.History = m.History[len(m.History)-maxHistory:]
	}
	return m.NoticeSeq
}
