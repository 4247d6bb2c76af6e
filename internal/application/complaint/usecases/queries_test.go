package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/domain/complaint"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/services/markdown"
)

func managerAndAgentEnforcer() *mockEnforcer {
	return &mockEnforcer{allowed: map[string]bool{
		"customer/comment":      true,
		"agent/update_status":   true,
		"agent/comment":         true,
		"manager/update_status": true,
		"manager/assign":        true,
		"manager/comment":       true,
		"manager/archive":       true,
	}}
}

func TestGetComplaintUseCase_Capabilities(t *testing.T) {
	tests := []struct {
		name string
		role string
		id   string
		want [4]bool
	}{
		{"customer", "customer", "user-1", [4]bool{false, false, true, false}},
		{"agent", "agent", "agent-1", [4]bool{true, false, true, false}},
		{"manager", "manager", "manager-1", [4]bool{true, true, true, true}},
		{"anonymous", "", "", [4]bool{false, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := submittedComplaint("comp-1", "COMP-2024-0001")
			repo := &mockComplaintRepository{
				GetByIDOrCodeFunc: func(ctx context.Context, key string) (*complaint.Complaint, error) {
					return c, nil
				},
			}

			uc := NewGetComplaintUseCase(repo, managerAndAgentEnforcer(), markdown.NewRenderer(), logger.NewNopLogger())
			result, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintKey: "comp-1", ViewerID: tt.id, ViewerRole: tt.role})

			require.NoError(t, err)
			got := [4]bool{
				result.Capabilities.CanUpdateStatus,
				result.Capabilities.CanAssign,
				result.Capabilities.CanComment,
				result.Capabilities.CanArchive,
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetComplaintUseCase_AssignOnlyWhileSubmitted(t *testing.T) {
	c := submittedComplaint("comp-1", "COMP-2024-0001")
	assigned, err := c.AssignTo(complaint.PermissivePolicy{}, complaint.Actor{ID: "agent-1", Name: "Amit Singh"}, complaint.Actor{ID: "manager-1"}, c.UpdatedAt())
	require.NoError(t, err)

	repo := &mockComplaintRepository{
		GetByIDOrCodeFunc: func(ctx context.Context, key string) (*complaint.Complaint, error) {
			return assigned, nil
		},
	}
	uc := NewGetComplaintUseCase(repo, managerAndAgentEnforcer(), nil, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintKey: "comp-1", ViewerID: "manager-1", ViewerRole: "manager"})
	require.NoError(t, err)
	assert.False(t, result.Capabilities.CanAssign)
	assert.True(t, result.Capabilities.CanArchive)
}

func TestGetComplaintUseCase_RendersMarkdown(t *testing.T) {
	c := submittedComplaint("comp-1", "COMP-2024-0001")
	c, err := c.AddComment(mustComment(t, "c1", "agent-1", "Checking with *claims*"), c.UpdatedAt())
	require.NoError(t, err)

	repo := &mockComplaintRepository{
		GetByIDOrCodeFunc: func(ctx context.Context, key string) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	uc := NewGetComplaintUseCase(repo, nil, markdown.NewRenderer(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintKey: "comp-1"})
	require.NoError(t, err)
	assert.Contains(t, result.DescriptionHTML, "<strong>expedite</strong>")
	assert.Empty(t, result.ResolutionHTML)
	assert.Contains(t, result.Comments[0].TextHTML, "<em>claims</em>")
	assert.Equal(t, "Please **expedite**", result.Description)
	assert.Equal(t, "info", result.StatusTone)
}

func TestGetComplaintUseCase_RenderFailureLeavesHTMLEmpty(t *testing.T) {
	c := submittedComplaint("comp-1", "COMP-2024-0001")
	repo := &mockComplaintRepository{
		GetByIDOrCodeFunc: func(ctx context.Context, key string) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	uc := NewGetComplaintUseCase(repo, nil, failingRenderer{}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintKey: "comp-1"})
	require.NoError(t, err)
	assert.Empty(t, result.DescriptionHTML)
	assert.Equal(t, "Please **expedite**", result.Description)
}

func TestGetComplaintUseCase_NotFound(t *testing.T) {
	uc := NewGetComplaintUseCase(&mockComplaintRepository{}, nil, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintKey: "COMP-2024-0404"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListComplaintsUseCase_BuildsFilter(t *testing.T) {
	status := "In Progress"
	priority := "High"

	var got complaint.Filter
	repo := &mockComplaintRepository{
		ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
			got = filter
			return []*complaint.Complaint{submittedComplaint("comp-1", "COMP-2024-0001")}, 7, nil
		},
	}
	uc := NewListComplaintsUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ListComplaintsQuery{
		View:     ViewAgent,
		UserID:   "agent-1",
		Status:   &status,
		Priority: &priority,
		Search:   "claim",
		SortBy:   "priority",
		Page:     0,
		PageSize: 500,
	})

	require.NoError(t, err)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, "agent-1", *got.AssignedTo)
	assert.Nil(t, got.CustomerID)
	assert.Equal(t, "In Progress", got.Status.String())
	assert.Equal(t, "High", got.Priority.String())
	assert.Nil(t, got.Category)
	assert.Equal(t, "claim", got.Search)
	assert.Equal(t, complaint.SortPriority, got.SortBy)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.PageSize)
	assert.False(t, got.IncludeArchived)

	assert.EqualValues(t, 7, result.TotalCount)
	require.Len(t, result.Complaints, 1)
	assert.Equal(t, "COMP-2024-0001", result.Complaints[0].Code)
}

func TestListComplaintsUseCase_InvalidQuery(t *testing.T) {
	bad := "Urgent"
	tests := []struct {
		name  string
		query ListComplaintsQuery
	}{
		{"bad sort", ListComplaintsQuery{SortBy: "alphabetical"}},
		{"bad priority", ListComplaintsQuery{Priority: &bad}},
		{"bad status", ListComplaintsQuery{Status: &bad}},
		{"bad category", ListComplaintsQuery{Category: &bad}},
		{"customer view without id", ListComplaintsQuery{View: ViewCustomer}},
		{"unknown view", ListComplaintsQuery{View: "everyone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewListComplaintsUseCase(&mockComplaintRepository{}, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), tt.query)
			assert.True(t, apperrors.IsValidationError(err), "unexpected error: %v", err)
		})
	}
}

func TestListComplaintsUseCase_RepositoryFailure(t *testing.T) {
	repo := &mockComplaintRepository{
		ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
			return nil, 0, errors.New("boom")
		},
	}
	uc := NewListComplaintsUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListComplaintsQuery{})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func mustComment(t *testing.T, id, author, text string) complaint.Comment {
	t.Helper()
	c, err := complaint.NewComment(id, complaint.Actor{ID: author, Name: author}, text, submittedComplaint("x", "y").CreatedAt())
	require.NoError(t, err)
	return c
}
