package roll_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/roll"
	rollmock "github.com/KirkDiggler/darkforge/roll/mock"
)

type D6TestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *rollmock.MockRoller
	pool       *roll.D6
}

func TestD6Suite(t *testing.T) {
	suite.Run(t, new(D6TestSuite))
}

func (s *D6TestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = rollmock.NewMockRoller(s.ctrl)
	s.pool = roll.NewD6(s.mockRoller)
}

func (s *D6TestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *D6TestSuite) TestSortsDescending() {
	s.mockRoller.EXPECT().RollN(4, roll.DieSize).Return([]int{2, 6, 1, 4}, nil)

	got, err := s.pool.Roll(4, roll.SortDescending)
	s.Require().NoError(err)
	s.Assert().Equal([]int{6, 4, 2, 1}, got)
}

func (s *D6TestSuite) TestSortsAscending() {
	s.mockRoller.EXPECT().RollN(3, roll.DieSize).Return([]int{5, 3, 4}, nil)

	got, err := s.pool.Roll(3, roll.SortAscending)
	s.Require().NoError(err)
	s.Assert().Equal([]int{3, 4, 5}, got)
}

func (s *D6TestSuite) TestZeroDiceSkipsRoller() {
	got, err := s.pool.Roll(0, roll.SortDescending)
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func (s *D6TestSuite) TestNegativeCount() {
	_, err := s.pool.Roll(-1, roll.SortDescending)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *D6TestSuite) TestRollerError() {
	s.mockRoller.EXPECT().RollN(2, roll.DieSize).Return(nil, fmt.Errorf("entropy exhausted"))

	_, err := s.pool.Roll(2, roll.SortAscending)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "entropy exhausted")
}

func (s *D6TestSuite) TestRejectsBadRollerOutput() {
	s.Run("wrong count", func() {
		s.mockRoller.EXPECT().RollN(3, roll.DieSize).Return([]int{1, 2}, nil)
		_, err := s.pool.Roll(3, roll.SortAscending)
		s.Assert().True(errors.IsInternal(err))
	})

	s.Run("face out of range", func() {
		s.mockRoller.EXPECT().RollN(2, roll.DieSize).Return([]int{7, 2}, nil)
		_, err := s.pool.Roll(2, roll.SortAscending)
		s.Assert().True(errors.IsInternal(err))
		s.Assert().Equal(7, errors.GetMeta(err)["face"])
	})
}

func TestD6WithDefaultRoller(t *testing.T) {
	pool := roll.NewD6(nil)

	for i := 0; i < 20; i++ {
		got, err := pool.Roll(5, roll.SortDescending)
		if err != nil {
			t.Fatalf("roll failed: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("got %d dice, want 5", len(got))
		}
		for j, d := range got {
			if d < 1 || d > 6 {
				t.Fatalf("face %d out of range", d)
			}
			if j > 0 && got[j-1] < d {
				t.Fatalf("dice not descending: %v", got)
			}
		}
	}
}
