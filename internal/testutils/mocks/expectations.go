// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lamali292/one-piece-api/internal/pkg/clock"
	"github.com/lamali292/one-piece-api/internal/repositories/progress"
	progressmock "github.com/lamali292/one-piece-api/internal/repositories/progress/mock"
)

// ExpectProgressGet sets up a mock expectation for getting a player's progress
func ExpectProgressGet(
	ctx context.Context, mockRepo *progressmock.MockRepository,
	playerID, category string, p *progress.Progress, err error,
) *gomock.Call {
	var out *progress.GetOutput
	if err == nil {
		out = &progress.GetOutput{Progress: p}
	}
	return mockRepo.EXPECT().
		Get(ctx, progress.GetInput{PlayerID: playerID, Category: category}).
		Return(out, err)
}

// ExpectProgressSave sets up a mock expectation for saving progress. The
// saved value is handed to capture when it is not nil.
func ExpectProgressSave(
	ctx context.Context, mockRepo *progressmock.MockRepository, capture func(*progress.Progress),
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progress.SaveInput) (*progress.SaveOutput, error) {
			// Simulate repository behavior - it would set the timestamp
			saved := *input.Progress
			saved.UpdatedAt = Clock.Now()
			if capture != nil {
				capture(&saved)
			}
			return &progress.SaveOutput{Progress: &saved}, nil
		})
}

// ExpectProgressList sets up a mock expectation for listing a player's progress
func ExpectProgressList(
	ctx context.Context, mockRepo *progressmock.MockRepository, playerID string, list []*progress.Progress,
) *gomock.Call {
	return mockRepo.EXPECT().
		ListByPlayerID(ctx, progress.ListByPlayerIDInput{PlayerID: playerID}).
		Return(&progress.ListByPlayerIDOutput{Progress: list}, nil)
}

// Clock stamps progress saved through ExpectProgressSave
var Clock = clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
