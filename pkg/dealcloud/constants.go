// Package dealcloud provides constants used throughout the DealCloud SDK.
package dealcloud

import "time"

// API paths, relative to https://{site}.
const (
	TokenPath        = "/api/rest/v1/oauth/token"
	UserActivityPath = "/api/rest/v1/management/user/activity"
)

// OAuth2 client-credentials settings.
const (
	// TokenScope is the only scope that grants access to the user activity log.
	TokenScope = "user_management"

	// TokenLifetime is how long the server keeps an access token valid.
	// The SDK does not track it; callers fetch a fresh token per run.
	TokenLifetime = 15 * time.Minute
)

// Default HTTP Configuration Constants
const (
	DefaultTimeout = 30 * time.Second

	// MaxErrorBodyLength caps how much of an error response is kept in HTTPError.
	MaxErrorBodyLength = 512
)

// Activity filter limits.
const (
	MinActivity       = 1
	MaxActivity       = 10
	MinSource         = 1
	MaxSource         = 4
	MinExportDataType = 1
	MaxExportDataType = 4

	// ExportActivity is the only activity type that accepts an export data type.
	ExportActivity = 8
)

// Server-side pagination defaults, applied by the API when a parameter is omitted.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// Documented API limits for the reporting window. These are not enforced by
// the SDK; the server rejects requests that fall outside them.
const (
	MaxLookbackDays = 90
	MinWindowDays   = 1
)
