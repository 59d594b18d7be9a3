package resolution

import (
	"context"

	"github.com/KirkDiggler/darkforge/errors"
)

// WithStatusErrors wraps svc for callers serving it over gRPC. Every error
// it returns is a status error whose code follows the error's Code, with
// the Reason and Meta carried in a google.rpc.ErrorInfo detail.
func WithStatusErrors(svc Service) Service {
	return &statusService{next: svc}
}

type statusService struct {
	next Service
}

func (s *statusService) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	out, err := s.next.CreateCharacter(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (s *statusService) RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error) {
	out, err := s.next.RollAction(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (s *statusService) Resist(ctx context.Context, input *ResistInput) (*ResistOutput, error) {
	out, err := s.next.Resist(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (s *statusService) SufferHarm(ctx context.Context, input *SufferHarmInput) (*SufferHarmOutput, error) {
	out, err := s.next.SufferHarm(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (s *statusService) Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error) {
	out, err := s.next.Recover(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (s *statusService) MarkTrauma(ctx context.Context, input *MarkTraumaInput) (*MarkTraumaOutput, error) {
	out, err := s.next.MarkTrauma(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
