package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is the stable, wire-visible code of a classified failure
type ErrorCode string

const (
	CodeMissingParam       ErrorCode = "BR_MISSING_PARAM"
	CodeMalformedParam     ErrorCode = "BR_MALFORMED_PARAM"
	CodeMalformedBody      ErrorCode = "BR_MALFORMED_BODY"
	CodeInvalidID          ErrorCode = "BR_INVALID_ID"
	CodeTextTooLong        ErrorCode = "BR_TEXT_TOO_LONG"
	CodeModifyingCancelled ErrorCode = "BR_MODIFYING_CANCELLED"
	CodeInvalidRange       ErrorCode = "BR_INVALID_RANGE"
	CodeStayTooShort       ErrorCode = "BR_RANGE_NOT_ALLOWED_TOO_LOW"
	CodeStayTooLong        ErrorCode = "BR_RANGE_NOT_ALLOWED_TOO_HIGH"
	CodeArrivalTooEarly    ErrorCode = "BR_ARRIVAL_TOO_EARLY"
	CodeNoAvailability     ErrorCode = "BR_NO_MORE_RESERVATION_AVAILABLE"
	CodeNotFound           ErrorCode = "NF_BY_ID"
	CodeInternal           ErrorCode = "ISE"
)

// ErrorKind groups codes by who can correct the failure
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
)

// Kind returns the kind of the code. Unknown codes are internal.
func (c ErrorCode) Kind() ErrorKind {
	switch c {
	case CodeMissingParam, CodeMalformedParam, CodeMalformedBody, CodeInvalidID,
		CodeTextTooLong, CodeModifyingCancelled, CodeInvalidRange, CodeStayTooShort,
		CodeStayTooLong, CodeArrivalTooEarly, CodeNoAvailability:
		return KindValidation
	case CodeNotFound:
		return KindNotFound
	case CodeInternal:
		return KindInternal
	default:
		return KindInternal
	}
}

// HTTPStatus returns the response status for the kind
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Meta keys
const (
	MetaParam            = "param"
	MetaValue            = "value"
	MetaRequiredType     = "requiredType"
	MetaOriginalMessage  = "originalMessage"
	MetaText             = "text"
	MetaTextLength       = "textLength"
	MetaMaxTextLength    = "maxTextLength"
	MetaCancellationDate = "cancellationDate"
	MetaStartParam       = "startParam"
	MetaStart            = "start"
	MetaEndParam         = "endParam"
	MetaEnd              = "end"
	MetaArrival          = "arrival"
	MetaDeparture        = "departure"
	MetaMinStay          = "minStay"
	MetaMaxStay          = "maxStay"
	MetaActualStay       = "actualStay"
	MetaMinArrival       = "minArrival"
	MetaEntity           = "entity"
	MetaID               = "id"
)

const (
	msgMissingParam       = "Missing param"
	msgMalformedParam     = "Unable to parse param"
	msgMalformedBody      = "Unable to parse body content"
	msgInvalidID          = "Invalid id value"
	msgTextTooLong        = "Text is too long"
	msgModifyingCancelled = "Reservation has already been cancelled, can not be modified"
	msgInvalidRange       = "Invalid range. Start can not be after end"
	msgStayTooShort       = "Range not allowed. It does not reach minimum stay days"
	msgStayTooLong        = "Range not allowed. It surpass maximum stay days"
	msgArrivalTooEarly    = "Arrival is too early"
	msgNoAvailability     = "There are no more reservations available for the requested dates"
	msgNotFound           = "Entity not found by id"
	msgInternal           = "There has been an unexpected error"
)

// Error is a classified failure carrying a stable code and structured metadata
type Error struct {
	Code    ErrorCode
	Message string
	Meta    map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code, so errors.Is works against the sentinels below
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Kind returns the kind of the error code
func (e *Error) Kind() ErrorKind {
	return e.Code.Kind()
}

// Sentinels for errors.Is
var (
	ErrMissingParam     = &Error{Code: CodeMissingParam, Message: msgMissingParam}
	ErrMalformedParam   = &Error{Code: CodeMalformedParam, Message: msgMalformedParam}
	ErrMalformedBody    = &Error{Code: CodeMalformedBody, Message: msgMalformedBody}
	ErrInvalidID        = &Error{Code: CodeInvalidID, Message: msgInvalidID}
	ErrTextTooLong      = &Error{Code: CodeTextTooLong, Message: msgTextTooLong}
	ErrAlreadyCancelled = &Error{Code: CodeModifyingCancelled, Message: msgModifyingCancelled}
	ErrInvalidRange     = &Error{Code: CodeInvalidRange, Message: msgInvalidRange}
	ErrStayTooShort     = &Error{Code: CodeStayTooShort, Message: msgStayTooShort}
	ErrStayTooLong      = &Error{Code: CodeStayTooLong, Message: msgStayTooLong}
	ErrArrivalTooEarly  = &Error{Code: CodeArrivalTooEarly, Message: msgArrivalTooEarly}
	ErrNoAvailability   = &Error{Code: CodeNoAvailability, Message: msgNoAvailability}
	ErrNotFound         = &Error{Code: CodeNotFound, Message: msgNotFound}
	ErrInternal         = &Error{Code: CodeInternal, Message: msgInternal}
)

// AsError extracts a classified error from the chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Classify returns the classified error of err, wrapping anything unclassified as internal
func Classify(err error) *Error {
	if e, ok := AsError(err); ok {
		return e
	}
	return Internal(err)
}

func NewMissingParam(param string) *Error {
	return &Error{
		Code:    CodeMissingParam,
		Message: msgMissingParam,
		Meta:    map[string]any{MetaParam: param},
	}
}

func NewInvalidID() *Error {
	return &Error{Code: CodeInvalidID, Message: msgInvalidID}
}

func NewTextTooLong(param, text string, length, maxLength int) *Error {
	return &Error{
		Code:    CodeTextTooLong,
		Message: msgTextTooLong,
		Meta: map[string]any{
			MetaParam:         param,
			MetaText:          text,
			MetaTextLength:    length,
			MetaMaxTextLength: maxLength,
		},
	}
}

func NewInvalidRange(startParam string, start time.Time, endParam string, end time.Time) *Error {
	return &Error{
		Code:    CodeInvalidRange,
		Message: msgInvalidRange,
		Meta: map[string]any{
			MetaStartParam: startParam,
			MetaStart:      start.Format(DateFormat),
			MetaEndParam:   endParam,
			MetaEnd:        end.Format(DateFormat),
		},
	}
}

func NewStayTooShort(arrival, departure time.Time, minStay, maxStay, actualStay int) *Error {
	return &Error{
		Code:    CodeStayTooShort,
		Message: msgStayTooShort,
		Meta:    stayMeta(arrival, departure, minStay, maxStay, actualStay),
	}
}

func NewStayTooLong(arrival, departure time.Time, minStay, maxStay, actualStay int) *Error {
	return &Error{
		Code:    CodeStayTooLong,
		Message: msgStayTooLong,
		Meta:    stayMeta(arrival, departure, minStay, maxStay, actualStay),
	}
}

func NewArrivalTooEarly(arrival, minArrival time.Time) *Error {
	return &Error{
		Code:    CodeArrivalTooEarly,
		Message: msgArrivalTooEarly,
		Meta: map[string]any{
			MetaArrival:    arrival.Format(DateFormat),
			MetaMinArrival: minArrival.Format(DateFormat),
		},
	}
}

func NewNoAvailability(arrival, departure time.Time) *Error {
	return &Error{
		Code:    CodeNoAvailability,
		Message: msgNoAvailability,
		Meta: map[string]any{
			MetaArrival:   arrival.Format(DateFormat),
			MetaDeparture: departure.Format(DateFormat),
		},
	}
}

func NewAlreadyCancelled(cancelledAt time.Time) *Error {
	return &Error{
		Code:    CodeModifyingCancelled,
		Message: msgModifyingCancelled,
		Meta:    map[string]any{MetaCancellationDate: cancelledAt},
	}
}

// NewMalformedParam is raised by the transport when a query or path value can not be parsed
func NewMalformedParam(param, value, requiredType string, cause error) *Error {
	meta := map[string]any{
		MetaParam:        param,
		MetaValue:        value,
		MetaRequiredType: requiredType,
	}
	if cause != nil {
		meta[MetaOriginalMessage] = cause.Error()
	}
	return &Error{Code: CodeMalformedParam, Message: msgMalformedParam, Meta: meta, cause: cause}
}

// NewMalformedBody is raised by the transport when a request body can not be decoded
func NewMalformedBody(cause error) *Error {
	return &Error{Code: CodeMalformedBody, Message: msgMalformedBody, cause: cause}
}

func NewNotFound(entity string, id int64) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: msgNotFound,
		Meta:    map[string]any{MetaEntity: entity, MetaID: id},
	}
}

// Internal wraps an unclassified failure. The cause stays in the chain for logging
// but the message is always the generic one.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: msgInternal, cause: cause}
}

func stayMeta(arrival, departure time.Time, minStay, maxStay, actualStay int) map[string]any {
	return map[string]any{
		MetaArrival:    arrival.Format(DateFormat),
		MetaDeparture:  departure.Format(DateFormat),
		MetaMinStay:    minStay,
		MetaMaxStay:    maxStay,
		MetaActualStay: actualStay,
	}
}

// Outcome labels a call result for metrics: "success", "rejected" for validation
// and not-found failures, "error" for everything else
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	if Classify(err).Kind() == KindInternal {
		return "error"
	}
	return "rejected"
}
