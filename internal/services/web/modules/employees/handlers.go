package employees

import (
	"net/http"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
	"github.com/louisbranch/staffbook/internal/services/web/platform/flash"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/staffbook/internal/services/web/platform/weberror"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/staffbook/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service    service
	workspaces *workspaces
}

func newHandlers(s service, ws *workspaces, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, workspaces: ws}
}

// session acquires and locks the caller's workspace. The returned func
// releases it.
func (h handlers) session(w http.ResponseWriter, r *http.Request) (*directory.Session, func(), bool) {
	entry, err := h.workspaces.acquire(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "", err))
		return nil, nil, false
	}
	entry.mu.Lock()
	return entry.session, entry.mu.Unlock, true
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := h.service.ensureLoaded(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.renderPage(w, r, sess, h.service.applyQuery(sess, r.URL.Query()))
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	h.service.openCreate(sess)
	h.renderPage(w, r, sess, h.service.ensureLoaded(r.Context(), sess))
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := h.service.ensureLoaded(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.renderPage(w, r, sess, h.service.openEdit(sess, employeeID(r)))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, sess, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", err))
		return
	}
	if err := h.service.ensureLoaded(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	record, err := h.service.submitCreate(r.Context(), sess, r.PostForm)
	if err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.redirectWithNotice(w, r, flash.Success("employees.notice.created", record.FullName))
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, sess, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", err))
		return
	}
	if err := h.service.ensureLoaded(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	record, err := h.service.submitEdit(r.Context(), sess, employeeID(r), r.PostForm)
	if err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.redirectWithNotice(w, r, flash.Success("employees.notice.updated", record.FullName))
}

func (h handlers) handleFormReset(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	h.service.resetForm(sess)
	httpx.WriteRedirect(w, r, routepath.Employees)
}

func (h handlers) handleFormClose(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, sess, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", err))
		return
	}
	if err := h.service.closeForm(sess, r.PostForm); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Employees)
}

func (h handlers) handleDeletePrompt(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := h.service.ensureLoaded(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.renderPage(w, r, sess, h.service.requestDelete(sess, employeeID(r)))
}

func (h handlers) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := h.service.confirmDelete(r.Context(), sess, employeeID(r)); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.redirectWithNotice(w, r, flash.Notice{Kind: flash.KindSuccess, Key: "employees.notice.deleted"})
}

func (h handlers) handleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	h.service.cancelDelete(sess)
	httpx.WriteRedirect(w, r, routepath.Employees)
}

func (h handlers) handleReload(w http.ResponseWriter, r *http.Request) {
	sess, unlock, ok := h.session(w, r)
	if !ok {
		return
	}
	defer unlock()
	if err := h.service.reload(r.Context(), sess); err != nil {
		h.renderPage(w, r, sess, err)
		return
	}
	h.redirectWithNotice(w, r, flash.Notice{Kind: flash.KindInfo, Key: "employees.notice.reloaded"})
}

func (h handlers) redirectWithNotice(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	flash.Write(w, r, notice, h.SchemePolicy())
	httpx.WriteRedirect(w, r, routepath.Employees)
}

// renderPage renders the current session state. A non-nil pageErr is shown
// in the error banner and sets the response status.
func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, sess *directory.Session, pageErr error) {
	loc := h.PageLocalizer(w, r)
	view := employeesPageView(sess, loc)
	status := http.StatusOK
	if pageErr != nil {
		h.LogError(r, pageErr)
		view.Error = weberror.PublicMessage(loc, pageErr)
		status = apperrors.HTTPStatus(pageErr)
	}
	h.WritePage(w, r, webtemplates.T(loc, "employees.title"), status, webtemplates.EmployeesFragment(view, employeesRoutes(), loc))
}

func employeeID(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("employeeID"))
}
