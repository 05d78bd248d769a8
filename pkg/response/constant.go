package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 1
)
