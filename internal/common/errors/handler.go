// internal/common/errors/handler.go
package errors

// ErrorHandler logs run failures with standardized fields
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleRunError logs err and returns the exit status the process should use.
func (h *ErrorHandler) HandleRunError(runID string, err error) int {
	if err == nil {
		return 0
	}

	stdErr := AsStandardError(err)
	fields := map[string]interface{}{
		"runId":         runID,
		"errorCode":     string(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}
	h.logger.Error("Run failed", fields)

	return ExitCode(stdErr)
}
