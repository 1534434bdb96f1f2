package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "app.title", "Employee Directory")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	// Table
	message.SetString(lang, "employees.title", "Employees")
	message.SetString(lang, "employees.search", "Search Employees")
	message.SetString(lang, "employees.search_submit", "Search")
	message.SetString(lang, "employees.add_new", "Add new")
	message.SetString(lang, "employees.reload", "Reload")
	message.SetString(lang, "employees.empty", "No employees to show.")
	message.SetString(lang, "employees.col.full_name", "Name")
	message.SetString(lang, "employees.col.address", "Address")
	message.SetString(lang, "employees.col.phone_number", "Phone number")
	message.SetString(lang, "employees.col.email", "Email")
	message.SetString(lang, "employees.col.actions", "Actions")
	message.SetString(lang, "employees.action.edit", "Edit")
	message.SetString(lang, "employees.action.delete", "Delete")
	message.SetString(lang, "employees.sort.asc", "sorted ascending")
	message.SetString(lang, "employees.sort.desc", "sorted descending")

	// Pagination
	message.SetString(lang, "employees.pagination.rows_per_page", "Rows per page:")
	message.SetString(lang, "employees.pagination.apply", "Apply")
	message.SetString(lang, "employees.pagination.range", "%d-%d of %d")
	message.SetString(lang, "employees.pagination.prev", "Previous page")
	message.SetString(lang, "employees.pagination.next", "Next page")

	// Record form
	message.SetString(lang, "employees.form.title", "Employee Form")
	message.SetString(lang, "employees.form.full_name", "Full Name")
	message.SetString(lang, "employees.form.address", "Address")
	message.SetString(lang, "employees.form.phone_number", "Phone Number")
	message.SetString(lang, "employees.form.email", "Email")
	message.SetString(lang, "employees.form.submit", "Submit")
	message.SetString(lang, "employees.form.reset", "Reset")
	message.SetString(lang, "employees.form.close", "Close")

	// Delete confirmation
	message.SetString(lang, "employees.confirm.title", "Are you sure?")
	message.SetString(lang, "employees.confirm.subtitle", "You cant undo this!")
	message.SetString(lang, "employees.confirm.yes", "Yes")
	message.SetString(lang, "employees.confirm.no", "No")

	// Notices
	message.SetString(lang, "employees.notice.created", "%s was added.")
	message.SetString(lang, "employees.notice.updated", "%s was updated.")
	message.SetString(lang, "employees.notice.deleted", "Employee deleted.")
	message.SetString(lang, "employees.notice.reloaded", "Directory reloaded.")

	// Errors
	message.SetString(lang, "error.users_unavailable", "The users service is unreachable. Try again in a moment.")
	message.SetString(lang, "error.users_rejected", "The users service rejected the request.")
	message.SetString(lang, "error.unexpected_response", "The users service returned an unexpected response.")
	message.SetString(lang, "error.duplicate_id", "An employee with this id already exists.")
	message.SetString(lang, "error.employee_not_found", "Employee not found.")
	message.SetString(lang, "error.invalid_order_by", "That column cannot be sorted.")
	message.SetString(lang, "error.invalid_query", "The page, size, or order could not be read.")
	message.SetString(lang, "error.invalid_form", "The employee form could not be read.")
	message.SetString(lang, "error.form_closed", "The employee form is not open.")
	message.SetString(lang, "error.delete_not_confirmed", "Nothing is waiting for confirmation.")
	message.SetString(lang, "error.page.title", "Something went wrong")
	message.SetString(lang, "error.page.not_found", "Page not found")
	message.SetString(lang, "error.page.back", "Back to employees")
}
