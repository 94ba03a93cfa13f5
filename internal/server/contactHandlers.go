package server

import (
	"net/http"
)

func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, ok := submissionFromContext(ctx)
	if !ok {
		log.Error().Msg("Contact handler reached without a validated submission")
		InternalError(w)
		return
	}

	res, err := s.contact.Submit(ctx, sub)
	if err != nil {
		log.Error().Err(err).Msg("Error submitting contact request")
		InternalError(w)
		return
	}

	contactSubmissions.WithLabelValues(resultAccepted).Inc()

	writeJSON(w, http.StatusAccepted, res)
}
