package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/autgroup/pkg/buildinfo"
	"github.com/matzehuels/autgroup/pkg/errors"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error     string        `json:"error"`
	Code      errors.Code   `json:"code"`
	RequestID string        `json:"request_id,omitempty"`
	Result    *pkgio.Result `json:"result,omitempty"`
}

// handleAutgroup computes the automorphism group of the posted graph.
//
// Query parameters:
//
//	refresh=true   skip the result cache
//	timeout=5s     lower the configured search timeout
func (s *Server) handleAutgroup(w http.ResponseWriter, r *http.Request) {
	opts := s.cfg.Options
	opts.Logger = loggerFrom(r.Context(), s.cfg.Logger)
	if v := r.URL.Query().Get("refresh"); v != "" {
		refresh, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v))
			return
		}
		opts.Refresh = refresh
	}
	if v := r.URL.Query().Get("timeout"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "timeout must be a positive duration, got %q", v))
			return
		}
		if opts.Timeout == 0 || d < opts.Timeout {
			opts.Timeout = d
		}
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	d, err := pkgio.ReadJSON(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.New(errors.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		if res != nil && res.Result != nil {
			writeErrorWithResult(w, r, err, res.Result)
			return
		}
		writeError(w, r, err)
		return
	}
	if res.Cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	writeJSON(w, http.StatusOK, res.Result)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func errNotFound(r *http.Request) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path)
}

func errMethod(r *http.Request) error {
	return errors.New(errors.ErrCodeUnsupported, "method %s not allowed on %s", r.Method, r.URL.Path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorWithResult(w, r, err, nil)
}

func writeErrorWithResult(w http.ResponseWriter, r *http.Request, err error, res *pkgio.Result) {
	err = errors.Classify(err)
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if code == errors.ErrCodeUnsupported {
		status = http.StatusMethodNotAllowed
	}
	if status >= http.StatusInternalServerError {
		loggerFrom(r.Context(), nil).Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      code,
		RequestID: requestIDFrom(r.Context()),
		Result:    res,
	})
}
