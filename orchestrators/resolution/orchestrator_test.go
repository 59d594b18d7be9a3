package resolution_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/darkforge/action"
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/harm"
	mockclock "github.com/KirkDiggler/darkforge/internal/pkg/clock/mock"
	"github.com/KirkDiggler/darkforge/internal/pkg/idgen"
	"github.com/KirkDiggler/darkforge/internal/testutils"
	"github.com/KirkDiggler/darkforge/internal/testutils/builders"
	"github.com/KirkDiggler/darkforge/internal/testutils/mocks"
	"github.com/KirkDiggler/darkforge/orchestrators/resolution"
	"github.com/KirkDiggler/darkforge/roll"
	rollmock "github.com/KirkDiggler/darkforge/roll/mock"
	"github.com/KirkDiggler/darkforge/stress"
	"github.com/KirkDiggler/darkforge/tracker"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoller   *rollmock.MockRoller
	mockClock    *mockclock.MockClock
	logs         *bytes.Buffer
	orchestrator resolution.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = rollmock.NewMockRoller(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.logs = &bytes.Buffer{}
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = resolution.NewOrchestrator(&resolution.Config{
		DiceRoller:  s.mockRoller,
		IDGenerator: idgen.NewSequential(idgen.CharacterPrefix),
		Clock:       s.mockClock,
		Logger:      slog.New(slog.NewTextHandler(s.logs, nil)),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := resolution.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = resolution.NewOrchestrator(&resolution.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "DiceRoller: is required")
	s.Assert().NotContains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestNewOrchestratorDefaults() {
	svc, err := resolution.NewOrchestrator(&resolution.Config{DiceRoller: s.mockRoller})
	s.Require().NoError(err)

	out, err := svc.CreateCharacter(s.ctx, &resolution.CreateCharacterInput{Name: "Ash"})
	s.Require().NoError(err)
	s.Assert().Regexp(`^char_[0-9a-f-]{36}$`, out.Character.ID)
	s.Assert().False(out.Character.CreatedAt.IsZero())
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	createdAt := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(createdAt).Times(2)

	out, err := s.orchestrator.CreateCharacter(s.ctx, &resolution.CreateCharacterInput{
		Name:    "Silver Crow",
		Ratings: map[action.Action]uint8{action.ActionProwl: 2, action.ActionSway: 1},
	})
	s.Require().NoError(err)

	s.Assert().Equal("char_1", out.Character.ID)
	s.Assert().Equal("Silver Crow", out.Character.Name)
	s.Assert().Equal(createdAt, out.Character.CreatedAt)
	s.Assert().Equal(uint8(2), out.Character.Actions().Rating(action.ActionProwl))
	s.Assert().Equal(uint8(1), out.Character.Actions().Rating(action.ActionSway))
	s.Assert().Contains(s.logs.String(), "Character created")

	second, err := s.orchestrator.CreateCharacter(s.ctx, &resolution.CreateCharacterInput{Name: "Ash"})
	s.Require().NoError(err)
	s.Assert().Equal("char_2", second.Character.ID)
}

func (s *OrchestratorTestSuite) TestCreateCharacterFails() {
	testCases := []struct {
		name  string
		input *resolution.CreateCharacterInput
	}{
		{"nil input", nil},
		{"missing name", &resolution.CreateCharacterInput{}},
		{"unknown action", &resolution.CreateCharacterInput{
			Name:    "Ash",
			Ratings: map[action.Action]uint8{"ACTION_JUGGLE": 1},
		}},
	}

	s.mockClock.EXPECT().Now().Return(time.Time{}).AnyTimes()

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateCharacter(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollAction() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)
	mocks.ExpectDice(s.mockRoller, 2, 5, 4)

	out, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{
		Character: c,
		Action:    action.ActionProwl,
		Bonus:     1,
	})
	s.Require().NoError(err)

	s.Assert().Equal(3, out.Pool)
	s.Assert().Equal([]int{5, 4, 2}, out.Outcome.Dice)
	s.Assert().Equal(roll.RatingPartial, out.Outcome.Rating)
}

func (s *OrchestratorTestSuite) TestRollActionWithoutRating() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)
	mocks.ExpectDice(s.mockRoller, 6, 6)

	out, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{
		Character: c,
		Action:    action.ActionAttune,
	})
	s.Require().NoError(err)

	s.Assert().Equal(0, out.Pool)
	s.Assert().Equal(roll.RatingSuccess, out.Outcome.Rating, "an empty pool cannot crit")
}

func (s *OrchestratorTestSuite) TestRollActionFails() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)

	s.Run("nil character", func() {
		_, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{Action: action.ActionHunt})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown action", func() {
		_, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{Character: c, Action: "ACTION_NAP"})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("negative bonus", func() {
		_, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{
			Character: c, Action: action.ActionHunt, Bonus: -1,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("roller failure", func() {
		mocks.ExpectRollerError(s.mockRoller, 2, fmt.Errorf("no entropy"))
		_, err := s.orchestrator.RollAction(s.ctx, &resolution.RollActionInput{Character: c, Action: action.ActionProwl})
		s.Assert().True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestResist() {
	testCases := []struct {
		name        string
		startStress uint8
		pool        int
		faces       []int
		stressAfter uint8
		overflow    bool
		pending     bool
	}{
		{"six costs nothing", 3, 2, []int{6, 2}, 3, false, false},
		{"four costs two", 3, 1, []int{4}, 5, false, false},
		{"critical clears one", 3, 2, []int{6, 6}, 2, false, false},
		{"critical at zero stays zero", 0, 2, []int{6, 6}, 0, false, false},
		{"reaching max sets pending", 7, 1, []int{3}, 10, false, true},
		{"past max overflows", 8, 1, []int{1}, 10, true, true},
		{"zero pool prices lowest", 0, 0, []int{6, 2}, 4, false, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)
			_, err := c.Stress().Set(tc.startStress)
			s.Require().NoError(err)
			mocks.ExpectDice(s.mockRoller, tc.faces...)

			out, err := s.orchestrator.Resist(s.ctx, &resolution.ResistInput{Character: c, Pool: tc.pool})
			s.Require().NoError(err)

			s.Assert().Equal(tc.startStress, out.StressBefore)
			s.Assert().Equal(tc.stressAfter, out.StressAfter)
			s.Assert().Equal(tc.stressAfter, c.Stress().Get())
			s.Assert().Equal(tc.overflow, out.Overflow)
			s.Assert().Equal(tc.pending, out.PendingTrauma)
		})
	}
}

func (s *OrchestratorTestSuite) TestResistFails() {
	_, err := s.orchestrator.Resist(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)
	_, err = s.orchestrator.Resist(s.ctx, &resolution.ResistInput{Character: c, Pool: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(uint8(0), c.Stress().Get())
}

func (s *OrchestratorTestSuite) TestSufferHarm() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)

	out, err := s.orchestrator.SufferHarm(s.ctx, &resolution.SufferHarmInput{
		Character: c,
		Harm:      harm.Harm{Severity: harm.SeveritySevere, Kind: harm.KindSlashing},
	})
	s.Require().NoError(err)
	s.Assert().False(out.Escalated)
	s.Assert().False(out.Dead)

	out, err = s.orchestrator.SufferHarm(s.ctx, &resolution.SufferHarmInput{
		Character: c,
		Harm:      harm.Harm{Severity: harm.SeveritySevere, Kind: harm.KindFire},
	})
	s.Require().NoError(err)
	s.Assert().Equal(harm.Harm{Severity: harm.SeverityFatal, Kind: harm.KindFire}, out.Applied)
	s.Assert().True(out.Escalated)
	s.Assert().True(out.Dead)
	s.Assert().Contains(s.logs.String(), "Character took fatal harm")
}

func (s *OrchestratorTestSuite) TestSufferHarmWhenDead() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageDying)

	_, err := s.orchestrator.SufferHarm(s.ctx, &resolution.SufferHarmInput{
		Character: c,
		Harm:      harm.Harm{Severity: harm.SeverityFatal, Kind: harm.KindBlunt},
	})
	s.Assert().ErrorIs(err, harm.ErrHarmDead)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRecover() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageWounded)

	out, err := s.orchestrator.Recover(s.ctx, &resolution.RecoverInput{Character: c})
	s.Require().NoError(err)
	s.Assert().Equal([]harm.Harm{
		{Severity: harm.SeverityLesser, Kind: harm.KindSlashing},
		{Severity: harm.SeverityModerate, Kind: harm.KindBlunt},
	}, out.Remaining)
}

func (s *OrchestratorTestSuite) TestRecoverFails() {
	_, err := s.orchestrator.Recover(s.ctx, &resolution.RecoverInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageFresh),
	})
	s.Assert().ErrorIs(err, harm.ErrHealHealthy)

	_, err = s.orchestrator.Recover(s.ctx, &resolution.RecoverInput{
		Character: testutils.CreateTestCharacter(s.T(), testutils.StageDying),
	})
	s.Assert().ErrorIs(err, harm.ErrHealDead)
}

func (s *OrchestratorTestSuite) TestMarkTrauma() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageStressed)

	out, err := s.orchestrator.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{
		Character: c,
		Trauma:    stress.TraumaHaunted,
	})
	s.Require().NoError(err)

	s.Assert().Equal(stress.StateScarred, out.State)
	s.Assert().Equal([]stress.Trauma{stress.TraumaHaunted}, out.Traumas)
	s.Assert().Equal(uint8(0), c.Stress().Get())
	s.Assert().False(c.HasPendingTrauma())
}

func (s *OrchestratorTestSuite) TestMarkTraumaWithoutPendingTrauma() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)

	_, err := s.orchestrator.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{
		Character: c,
		Trauma:    stress.TraumaCold,
	})
	s.Assert().ErrorIs(err, resolution.ErrNoPendingTrauma)
	s.Assert().False(c.Traumas().Has(stress.TraumaCold))
}

func (s *OrchestratorTestSuite) TestMarkTraumaWhenBroken() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageBroken)

	_, err := s.orchestrator.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{
		Character: c,
		Trauma:    stress.TraumaSoft,
	})
	s.Assert().ErrorIs(err, tracker.ErrTooManyItems)
	s.Assert().True(c.HasPendingTrauma(), "stress is kept when the scar fails")
}

func (s *OrchestratorTestSuite) TestMarkTraumaDuplicate() {
	c, err := builders.NewCharacterBuilder().
		WithStress(stress.MaxStress).
		WithTraumas(stress.TraumaObsessed).
		Build()
	s.Require().NoError(err)

	_, err = s.orchestrator.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{
		Character: c,
		Trauma:    stress.TraumaObsessed,
	})
	s.Assert().ErrorIs(err, tracker.ErrDuplicate)
	s.Assert().Equal(errors.CodeAlreadyExists, errors.GetCode(err))
	s.Assert().Equal(stress.MaxStress, c.Stress().Get())
	s.Assert().Equal(1, c.Traumas().Count())
}

// A full scene: a botched climb, resisting the fall until trauma.
func (s *OrchestratorTestSuite) TestResistUntilTrauma() {
	c := testutils.CreateTestCharacter(s.T(), testutils.StageFresh)
	mocks.ExpectDiceSequence(s.mockRoller, []int{1, 1}, []int{1, 2}, []int{2, 1})

	for i := 0; i < 3; i++ {
		_, err := s.orchestrator.Resist(s.ctx, &resolution.ResistInput{Character: c, Pool: 2})
		s.Require().NoError(err)
	}
	s.Require().True(c.HasPendingTrauma())

	out, err := s.orchestrator.MarkTrauma(s.ctx, &resolution.MarkTraumaInput{Character: c, Trauma: stress.TraumaReckless})
	s.Require().NoError(err)
	s.Assert().Equal(stress.StateScarred, out.State)
}
