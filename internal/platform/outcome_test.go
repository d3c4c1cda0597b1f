package platform

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhr/crm-console/internal/model"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClassifySuccessWithData(t *testing.T) {
	res := response(http.StatusOK,
		`{"status":"success","message":"Customer retrieved successfully","data":{"id":"1","firstName":"Adam"}}`)

	r := Classify[model.Customer](res, nil)

	require.Equal(t, Success, r.Outcome)
	assert.True(t, r.Ok())
	assert.Equal(t, "1", r.Data.ID)
	assert.Equal(t, "Adam", r.Data.FirstName)
}

func TestClassifyDomainError(t *testing.T) {
	res := response(http.StatusNotFound,
		`{"status":"error","message":"Error occurred during requesting customer","data":{"errorCode":"CUSTOMER.NOT_FOUND","errorMessage":"Customer not found","timestamp":"2025-03-13T21:22:00"}}`)

	r := Classify[model.Customer](res, nil)

	require.Equal(t, DomainError, r.Outcome)
	require.NotNil(t, r.Domain)
	assert.Equal(t, "CUSTOMER.NOT_FOUND", r.Domain.ErrorCode)
	assert.Equal(t, "Customer not found", r.UserMessage())
}

func TestClassifyDomainErrorMessageSpelling(t *testing.T) {
	// some upstream payloads spell the text "message" instead of "errorMessage"
	res := response(http.StatusConflict,
		`{"status":"error","message":"conflict","data":{"errorCode":"FIELD.MISSING","message":"title is required","timestamp":"2025-03-13T21:22:00"}}`)

	r := Classify[model.Task](res, nil)

	require.Equal(t, DomainError, r.Outcome)
	assert.Equal(t, "title is required", r.UserMessage())
}

func TestClassifyServerErrorUnparseableBody(t *testing.T) {
	res := response(http.StatusInternalServerError, `<html>oops</html>`)

	r := Classify[model.Customer](res, nil)

	require.Equal(t, ServerError, r.Outcome)
	assert.False(t, r.Ok())
	// raw body content never reaches the operator
	assert.Equal(t, GenericFailureMessage, r.UserMessage())
	assert.Contains(t, r.Err.Error(), "500")
}

func TestClassify500IgnoresWellFormedErrorPayload(t *testing.T) {
	// a 500 is never a domain error, even when the body happens to parse
	res := response(http.StatusInternalServerError,
		`{"status":"error","message":"boom","data":{"errorCode":"INTERNAL.SERVER_ERROR","errorMessage":"stack trace here","timestamp":"2025-03-13T21:22:00"}}`)

	r := Classify[model.Customer](res, nil)

	require.Equal(t, ServerError, r.Outcome)
	assert.Equal(t, GenericFailureMessage, r.UserMessage())
}

func TestClassifyNonSuccessWithoutErrorShape(t *testing.T) {
	res := response(http.StatusNotFound, `{"status":"error","message":"gone","data":null}`)

	r := Classify[model.Customer](res, nil)

	assert.Equal(t, ServerError, r.Outcome)
}

func TestClassifyMalformedSuccessEnvelope(t *testing.T) {
	// every platform response is enveloped; a 200 that is not is a server error
	res := response(http.StatusOK, `not json at all`)

	r := Classify[model.Customer](res, nil)

	assert.Equal(t, ServerError, r.Outcome)
}

func TestClassifyTransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	r := Classify[model.Customer](nil, cause)

	require.Equal(t, ServerError, r.Outcome)
	assert.ErrorIs(t, r.Err, cause)
	assert.Equal(t, GenericFailureMessage, r.UserMessage())
}

func TestClassifyListPayload(t *testing.T) {
	res := response(http.StatusOK,
		`{"status":"success","message":"ok","data":[{"id":"1"},{"id":"2"}]}`)

	r := Classify[[]model.Customer](res, nil)

	require.True(t, r.Ok())
	require.Len(t, r.Data, 2)
	assert.Equal(t, "2", r.Data[1].ID)
}
