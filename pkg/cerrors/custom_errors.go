package cerrors

import (
	"encoding/json"
	"errors"

	"github.com/palantir/stacktrace"
)

type ErrorType string

const (
	ErrorTypeNonUserFriendly ErrorType = "NON_USER_FRIENDLY_ERROR"
	ErrorTypeGeneric         ErrorType = "GENERIC_ERROR"
	ErrorTypeConfig          ErrorType = "CONFIG_ERROR"
	ErrorTypeParse           ErrorType = "PARSE_ERROR"
	ErrorTypeDiscovery       ErrorType = "DISCOVERY_ERROR"
	ErrorTypeTargetSelection ErrorType = "TARGET_SELECTION_ERROR"
	ErrorTypeMissingScenario ErrorType = "MISSING_SCENARIO_ERROR"
	ErrorTypeUnknownScenario ErrorType = "UNKNOWN_SCENARIO_ERROR"
	ErrorTypeScenarioInit    ErrorType = "SCENARIO_INIT_ERROR"
)

type userFriendly interface {
	UserFriendly() bool
	ErrorType() ErrorType
}

// Error is the generic user-friendly error, rendered as json so that
// callers which persist it can read the code back
type Error struct {
	ErrorCode ErrorType `json:"errorCode"`
	Phase     string    `json:"phase,omitempty"`
	Reason    string    `json:"reason"`
	Target    string    `json:"target,omitempty"`
}

func (e Error) Error() string {
	data, err := json.Marshal(e)
	if err != nil {
		return e.Reason
	}
	return string(data)
}

func (e Error) UserFriendly() bool {
	return true
}

func (e Error) ErrorType() ErrorType {
	return e.ErrorCode
}

// IsUserFriendly returns true if err is marked as safe to present to an operator
func IsUserFriendly(err error) bool {
	var ufe userFriendly
	return errors.As(err, &ufe) && ufe.UserFriendly()
}

// GetErrorType returns the type of error if the error is user-friendly
func GetErrorType(err error) ErrorType {
	var ufe userFriendly
	if errors.As(err, &ufe) {
		return ufe.ErrorType()
	}
	return ErrorTypeNonUserFriendly
}

// GetRootCauseAndErrorCode strips the stacktrace wrapping and returns the
// message of the innermost user-friendly error along with its code
func GetRootCauseAndErrorCode(err error) (string, ErrorType) {
	rootCause := stacktrace.RootCause(err)
	errorType := GetErrorType(rootCause)
	if !IsUserFriendly(rootCause) {
		return err.Error(), errorType
	}
	return rootCause.Error(), errorType
}
