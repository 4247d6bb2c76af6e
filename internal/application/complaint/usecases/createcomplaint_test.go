package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/shared/biztime"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

func validCreateCommand() CreateComplaintCommand {
	return CreateComplaintCommand{
		CustomerID:   "user-1",
		CustomerName: "Rajesh Kumar",
		PolicyNumber: "POL-2024-001234",
		Category:     "Claims",
		Priority:     "High",
		Subject:      "Claim Settlement Delay",
		Description:  "No update for 30 days",
	}
}

func TestCreateComplaintUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	defer biztime.SetClockForTest(func() time.Time { return now })()

	var saved *complaint.Complaint
	repo := &mockComplaintRepository{
		InsertFunc: func(ctx context.Context, c *complaint.Complaint) error {
			saved = c
			return nil
		},
	}
	pub := &mockPublisher{}

	uc := NewCreateComplaintUseCase(repo, &mockCodeGenerator{code: "COMP-2025-0001"}, &sequenceIDs{}, pub, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "comp-1", result.ID)
	assert.Equal(t, "COMP-2025-0001", result.Code)
	assert.Equal(t, "Submitted", result.Status)
	assert.Equal(t, "Rajesh Kumar", result.CustomerName)
	require.Len(t, result.StatusHistory, 1)
	assert.Equal(t, "Submitted", result.StatusHistory[0].Status)
	assert.Equal(t, "user-1", result.StatusHistory[0].ChangedBy)
	assert.Equal(t, "Complaint submitted", result.StatusHistory[0].Notes)
	assert.Empty(t, result.Comments)
	assert.False(t, result.IsArchived)
	assert.Equal(t, now, result.CreatedAt)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)
	assert.Equal(t, []string{complaint.EventSubmitted}, pub.types())
}

func TestCreateComplaintUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateComplaintCommand)
	}{
		{"missing customer", func(c *CreateComplaintCommand) { c.CustomerID = "" }},
		{"unknown category", func(c *CreateComplaintCommand) { c.Category = "Fraud" }},
		{"unknown priority", func(c *CreateComplaintCommand) { c.Priority = "Urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inserted := false
			repo := &mockComplaintRepository{
				InsertFunc: func(ctx context.Context, c *complaint.Complaint) error {
					inserted = true
					return nil
				},
			}
			cmd := validCreateCommand()
			tt.mutate(&cmd)

			uc := NewCreateComplaintUseCase(repo, &mockCodeGenerator{code: "COMP-2025-0001"}, &sequenceIDs{}, &mockPublisher{}, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.False(t, inserted)
		})
	}
}

func TestCreateComplaintUseCase_Execute_CodeGeneratorFails(t *testing.T) {
	uc := NewCreateComplaintUseCase(&mockComplaintRepository{}, &mockCodeGenerator{err: errors.New("exhausted")}, &sequenceIDs{}, &mockPublisher{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), validCreateCommand())

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestCreateComplaintUseCase_Execute_DuplicateCode(t *testing.T) {
	pub := &mockPublisher{}
	repo := &mockComplaintRepository{
		InsertFunc: func(ctx context.Context, c *complaint.Complaint) error {
			return complaint.ErrDuplicateCode
		},
	}

	uc := NewCreateComplaintUseCase(repo, &mockCodeGenerator{code: "COMP-2024-0001"}, &sequenceIDs{}, pub, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), validCreateCommand())

	assert.True(t, apperrors.IsConflictError(err))
	assert.Empty(t, pub.types())
}
