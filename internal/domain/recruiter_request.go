package domain

import (
	"context"
	"time"
)

// Recruiter request statuses
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// RecruiterRequest is the moderation record through which a candidate is
// promoted to recruiter. At most one pending request per user exists at any
// time (partial unique index); decisions are single-shot.
type RecruiterRequest struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	CompanyName   string     `json:"company_name"`
	OfficialEmail string     `json:"official_email"`
	Website       string     `json:"website,omitempty"`
	LinkedIn      string     `json:"linkedin,omitempty"`
	Designation   string     `json:"designation"`
	Status        string     `json:"status"`
	ReviewedBy    *string    `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// RecruiterRequestWithUser joins the requester's identity for the admin
// moderation queue.
type RecruiterRequestWithUser struct {
	RecruiterRequest
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
}

type RecruiterRequestRepository interface {
	Create(ctx context.Context, req *RecruiterRequest) error
	GetByID(ctx context.Context, id string) (*RecruiterRequest, error)
	GetLatestByUser(ctx context.Context, userID string) (*RecruiterRequest, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	FetchPending(ctx context.Context) ([]RecruiterRequestWithUser, error)
	// Decide flips the request status and, on approval, promotes the
	// requesting user's role to recruiter inside the same transaction.
	Decide(ctx context.Context, id, reviewerID, status string, reviewedAt time.Time) error
}

type RecruiterRequestUsecase interface {
	Submit(ctx context.Context, req *RecruiterRequest) (*RecruiterRequest, error)
	GetMyRequest(ctx context.Context) (*RecruiterRequest, error)
	ListPending(ctx context.Context) ([]RecruiterRequestWithUser, error)
	Approve(ctx context.Context, requestID string) (*RecruiterRequest, error)
	Reject(ctx context.Context, requestID string) (*RecruiterRequest, error)
}
