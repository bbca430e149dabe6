package tui

type requestKind string

const (
	reqAuth          requestKind = "auth"
	reqGenerate      requestKind = "generate"
	reqSave          requestKind = "save"
	reqLibrary       requestKind = "library"
	reqDeleteItem    requestKind = "delete-item"
	reqHistory       requestKind = "history"
	reqBuy           requestKind = "buy"
	reqEmail         requestKind = "email"
	reqPassword      requestKind = "password"
	reqDeleteAccount requestKind = "delete-account"
	reqDashboard     requestKind = "dashboard"
	reqTheme         requestKind = "theme"
	reqLogout        requestKind = "logout"
)

// doneMsg carries the result of one backend call. seq is compared against the
// latest request of the same kind; older results only release the spinner.
type doneMsg struct {
	kind requestKind
	seq  uint64
	err  error
}

type bootedMsg struct {
	err error
}
