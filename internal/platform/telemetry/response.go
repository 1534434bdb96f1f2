package telemetry

import "net/http"

// ResponseRecorder wraps a ResponseWriter to capture the status code and body
// size for logging and metrics.
type ResponseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

// NewResponseRecorder wraps w.
func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w}
}

// WriteHeader records the status before delegating.
func (r *ResponseRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

// Write records an implicit 200 and the number of bytes written.
func (r *ResponseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *ResponseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Status returns the recorded status, defaulting to 200 when nothing was written.
func (r *ResponseRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// BytesWritten returns the number of body bytes written.
func (r *ResponseRecorder) BytesWritten() int {
	return r.bytes
}
