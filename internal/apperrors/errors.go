package apperrors

import "errors"

// Gateway errors represent failures reaching the metric store. A single
// failed lookup inside a batch operation is absorbed as a missing value;
// these errors surface only when an operation could obtain no data at all
// or when connectivity itself is being reported.
var (
	// ErrStoreUnavailable indicates the metric store could not be reached.
	ErrStoreUnavailable = errors.New("metric store unavailable")

	// ErrNoFundData indicates an operation completed but obtained no fund
	// data whatsoever. Distinguishes connectivity trouble from a genuinely
	// empty result, so callers never report "no matches" for an outage.
	ErrNoFundData = errors.New("no fund data could be obtained")
)

// Insufficient-data errors represent statistical computations that cannot
// run on the data available. They are returned by the specific operation
// and never abort a batch.
var (
	// ErrInsufficientReturnData indicates fewer return periods were found
	// than a consistency computation requires.
	ErrInsufficientReturnData = errors.New("insufficient return data")
)

// Invalid-input errors represent malformed arguments. These are rejected
// immediately with no partial computation.
var (
	// ErrTooFewFunds indicates a pairwise analysis was requested for fewer
	// than two funds.
	ErrTooFewFunds = errors.New("at least 2 funds are required")

	// ErrUnknownRiskProfile indicates a risk profile outside Low/Medium/High.
	ErrUnknownRiskProfile = errors.New("unknown risk profile")

	// ErrEmptyFundName indicates a required fund name argument was empty.
	ErrEmptyFundName = errors.New("fund name cannot be empty")

	// ErrEmptyMetricKey indicates a required metric key argument was empty.
	ErrEmptyMetricKey = errors.New("metric key cannot be empty")

	// ErrInvalidLeadAction indicates a lead response action other than
	// submit or decline.
	ErrInvalidLeadAction = errors.New("invalid lead response action")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidCSVHeaders indicates an import file whose header row does
	// not match the expected fund-metric columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")
)

// Domain entity errors represent missing entities in local storage.
var (
	// ErrLeadNotFound indicates that a lead with the given ID does not exist.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrSnapshotNotFound indicates no insight snapshot has been generated yet.
	ErrSnapshotNotFound = errors.New("insight snapshot not found")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveFunds    = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveProfile  = errors.New("failed to retrieve fund profile")
	ErrFailedToStoreLead        = errors.New("failed to store lead")
	ErrFailedToStoreSnapshot    = errors.New("failed to store insight snapshot")
	ErrFailedToRetrieveSnapshot = errors.New("failed to retrieve insight snapshot")
)
