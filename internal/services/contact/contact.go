package contact

import (
	"context"
	"time"

	"github.com/Heidric/contact-intake/internal/logger"
	"github.com/Heidric/contact-intake/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrEmptySubmission = errors.New("empty submission")

var log zerolog.Logger

type Service struct {
	now func() time.Time
}

func New() *Service {
	log = *logger.Log
	log = log.With().Str("name", "contact-service").Logger()
	return &Service{now: time.Now}
}

// Submit accepts an already validated submission and hands back a receipt the
// client can quote in follow-up correspondence.
func (s *Service) Submit(ctx context.Context, sub *model.ContactSubmission) (*model.ContactReceipt, error) {
	if sub == nil {
		return nil, ErrEmptySubmission
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "generate receipt id")
	}

	receipt := &model.ContactReceipt{
		ID:         id.String(),
		ReceivedAt: s.now().UTC(),
	}

	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &log
	}
	ev := l.Info().
		Str("receiptId", receipt.ID).
		Str("projectType", sub.ProjectType).
		Int("messageLength", len(sub.Message))
	if sub.Budget != nil && *sub.Budget != "" {
		ev = ev.Str("budget", *sub.Budget)
	}
	ev.Msg("Contact request received")

	return receipt, nil
}
