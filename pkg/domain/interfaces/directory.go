package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . Directory

import (
	"context"
	"time"

	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// Directory is the on-call directory service (Rootly)
type Directory interface {
	ListUsers(ctx context.Context) ([]*model.DirectoryUser, error)
	// FindUserByEmail returns nil without error when no user matches
	FindUserByEmail(ctx context.Context, email string) (*model.DirectoryUser, error)
	CreateOverride(ctx context.Context, userID types.DirectoryUserID, scheduleID types.ScheduleID, start, end time.Time) (types.OverrideID, error)
}
