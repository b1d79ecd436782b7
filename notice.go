package colman

// NoticeLevel grades a user-visible notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
	NoticeError
)

func (lvl NoticeLevel) String() string {
	switch lvl {
	case NoticeWarn:
		return "warn"
	case NoticeError:
		return "error"
	}
	return "info"
}

// Notice is a short message for the user about persistence.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(notice Notice)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(notice Notice)

func (fn NotifierFunc) Notify(notice Notice) {
	fn(notice)
}

var discardNotices = NotifierFunc(func(Notice) {})
