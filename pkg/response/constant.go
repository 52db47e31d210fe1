package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"

	DefaultErrorMessage = "something went wrong"
)
