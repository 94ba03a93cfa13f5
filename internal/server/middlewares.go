package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/Heidric/contact-intake/internal/model"
	"github.com/Heidric/contact-intake/internal/validation"
)

type ctxKey string

const CtxKeySubmission ctxKey = "contactSubmission"

const formContentType = "application/x-www-form-urlencoded"

// validateContact decodes the request body and runs the form validator over it.
// Rejected requests end here. Accepted ones continue with the cleaned
// submission in the context and the original body restored.
func (s *Server) validateContact(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				PayloadTooLargeError(w)
				return
			}
			log.Error().Err(err).Msg("Error reading request body")
			ParsingError(w)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		candidate, err := decodeCandidate(r.Header.Get("Content-Type"), body)
		if err != nil {
			ParsingError(w)
			return
		}

		sub, err := s.validator.ValidateContact(candidate)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				contactSubmissions.WithLabelValues(resultRejected).Inc()
				ValidationError(w, verr.Messages)
				return
			}
			log.Error().Err(err).Msg("Error validating contact request")
			InternalError(w)
			return
		}

		ctx := context.WithValue(r.Context(), CtxKeySubmission, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func submissionFromContext(ctx context.Context) (*model.ContactSubmission, bool) {
	sub, ok := ctx.Value(CtxKeySubmission).(*model.ContactSubmission)
	return sub, ok && sub != nil
}

// decodeCandidate turns a request body into a candidate record. A body that is
// empty or not a JSON object yields a nil record.
func decodeCandidate(contentType string, body []byte) (map[string]any, error) {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && mt == formContentType {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, err
		}
		candidate := make(map[string]any, len(values))
		for k, v := range values {
			if len(v) > 0 {
				candidate[k] = v[0]
			}
		}
		return candidate, nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	candidate, _ := v.(map[string]any)
	return candidate, nil
}
