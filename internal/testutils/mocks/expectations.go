// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/darkforge/roll"
	rollmock "github.com/KirkDiggler/darkforge/roll/mock"
)

// ExpectDice queues one d6 pool roll returning faces in the given order
func ExpectDice(mockRoller *rollmock.MockRoller, faces ...int) *gomock.Call {
	return mockRoller.EXPECT().
		RollN(len(faces), roll.DieSize).
		Return(faces, nil)
}

// ExpectDiceSequence queues several pool rolls that must happen in order
func ExpectDiceSequence(mockRoller *rollmock.MockRoller, rolls ...[]int) {
	calls := make([]any, 0, len(rolls))
	for _, faces := range rolls {
		calls = append(calls, ExpectDice(mockRoller, faces...))
	}
	gomock.InOrder(calls...)
}

// ExpectRollerError makes the next pool roll of n dice fail with err
func ExpectRollerError(mockRoller *rollmock.MockRoller, n int, err error) *gomock.Call {
	return mockRoller.EXPECT().
		RollN(n, roll.DieSize).
		Return(nil, err)
}
