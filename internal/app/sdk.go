package app

import (
	"context"

	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// SDK defines the interface for interacting with the DealCloud API.
// This allows for mocking in tests.
type SDK interface {
	FetchToken(ctx context.Context, clientID, clientSecret string) (string, error)
	GetUserActivity(ctx context.Context, accessToken string, filter dealcloud.ActivityFilter, page dealcloud.PageRequest) ([]dealcloud.ActivityRow, error)
}

var _ SDK = (*dealcloud.Client)(nil)
