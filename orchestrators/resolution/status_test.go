package resolution_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/harm"
	"github.com/KirkDiggler/darkforge/internal/testutils"
	"github.com/KirkDiggler/darkforge/internal/testutils/mocks"
	"github.com/KirkDiggler/darkforge/orchestrators/resolution"
	rollmock "github.com/KirkDiggler/darkforge/roll/mock"
	"github.com/KirkDiggler/darkforge/stress"
)

type StatusErrorsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *rollmock.MockRoller
	service    resolution.Service
	ctx        context.Context
}

func TestStatusErrorsSuite(t *testing.T) {
	suite.Run(t, new(StatusErrorsTestSuite))
}

func (s *StatusErrorsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = rollmock.NewMockRoller(s.ctrl)
	s.ctx = context.Background()

	inner, err := resolution.NewOrchestrator(&resolution.Config{
		DiceRoller: s.mockRoller,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.service = resolution.WithStatusErrors(inner)
}

func (s *StatusErrorsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatusErrorsTestSuite) errorInfo(st *status.Status) *errdetails.ErrorInfo {
	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Assert().Equal(errors.ErrorDomain, info.GetDomain())
	return info
}

func (s *StatusErrorsTestSuite) TestSuccessPassesThrough() {
	mocks.ExpectDice(s.mockRoller, 6, 1)

	out, err := s.service.Resist(s.ctx, &resolution.ResistInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageFresh),
		Pool:      2,
	})
	s.Require().NoError(err)
	s.Assert().Equal(uint8(0), out.StressAfter)
}

func (s *StatusErrorsTestSuite) TestHarmOnDeadCharacter() {
	_, err := s.service.SufferHarm(s.ctx, &resolution.SufferHarmInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageDying),
		Harm:      harm.Harm{Severity: harm.SeverityFatal, Kind: harm.KindFear},
	})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())

	info := s.errorInfo(st)
	s.Assert().Equal(string(harm.ReasonHarmDead), info.GetReason())
	s.Assert().Equal(string(harm.KindFear), info.GetMetadata()["kind"])
}

func (s *StatusErrorsTestSuite) TestTraumaWithoutPendingTrauma() {
	_, err := s.service.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageFresh),
		Trauma:    stress.TraumaCold,
	})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())

	info := s.errorInfo(st)
	s.Assert().Equal(string(resolution.ReasonNoPendingTrauma), info.GetReason())
	s.Assert().Equal("0", info.GetMetadata()["stress"])
}

func (s *StatusErrorsTestSuite) TestInvalidInputs() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"create without name", func() error {
			_, err := s.service.CreateCharacter(s.ctx, &resolution.CreateCharacterInput{})
			return err
		}},
		{"roll without character", func() error {
			_, err := s.service.RollAction(s.ctx, &resolution.RollActionInput{})
			return err
		}},
		{"recover without character", func() error {
			_, err := s.service.Recover(s.ctx, nil)
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Assert().Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *StatusErrorsTestSuite) TestHealthyRecoverCarriesReason() {
	_, err := s.service.Recover(s.ctx, &resolution.RecoverInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageFresh),
	})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal(string(harm.ReasonHealHealthy), s.errorInfo(st).GetReason())
}
