package response

const (
	DateTimeFormat = "2006-01-02T15:04:05"

	DefaultErrorMessage = "Something went wrong"

	CodeInternalError = "internal_server_error"
	CodeNotLoggedIn   = "rest_not_logged_in"
	CodeForbidden     = "rest_forbidden"
	CodeTermExists    = "term_exists"
	CodeInvalidParam  = "rest_invalid_param"

	MessageNotLoggedIn = "You are not currently logged in."
	MessageForbidden   = "Sorry, you are not allowed to do that."
	MessageTermExists  = "A term with the name provided already exists with this parent."
)
