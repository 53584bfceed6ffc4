package domain

import (
	"time"

	"github.com/google/uuid"
)

// College is an admin-managed institution users can belong to.
type College struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (College) TableName() string {
	return "colleges"
}

// CreateCollegeRequest is the request body for adding a college.
type CreateCollegeRequest struct {
	Name string `json:"name" validate:"required,max=128" example:"Northfield College"`
}

// CollegeResponse is the response body for college endpoints.
type CollegeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *College) ToResponse() CollegeResponse {
	return CollegeResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// StudentOverview is one student row in the admin view: the user plus the
// latest steps and stress readings (zero when no sample exists).
// @Description Student with latest activity and stress readings.
type StudentOverview struct {
	User   UserResponse `json:"user"`
	Steps  float64      `json:"steps" example:"8432"`
	Stress float64      `json:"stress" example:"34"`
}

// StudentOverviewListResponse is the response for the per-college student list.
type StudentOverviewListResponse struct {
	College string            `json:"college"`
	Data    []StudentOverview `json:"data"`
}
