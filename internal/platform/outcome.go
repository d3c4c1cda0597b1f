package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bhr/crm-console/internal/model"
)

type Outcome int

const (
	Success Outcome = iota
	DomainError
	ServerError
)

// GenericFailureMessage is what the operator sees when the platform fails
// in a way whose detail is not safe or meaningful to display.
const GenericFailureMessage = "Váratlan szerver hiba történt. Próbáld újra később!"

// Result is the classified outcome of one platform call. Exactly one of
// the variants applies: Success carries Data, DomainError carries the
// structured upstream error, ServerError carries only a loggable cause.
type Result[T any] struct {
	Outcome Outcome
	Data    T
	Domain  *model.ErrorResponse
	Err     error
}

func (r Result[T]) Ok() bool { return r.Outcome == Success }

// UserMessage returns the text safe to render to the operator: the
// upstream detail for domain errors, a generic message otherwise.
func (r Result[T]) UserMessage() string {
	if r.Outcome == DomainError && r.Domain != nil {
		return r.Domain.Detail()
	}
	return GenericFailureMessage
}

// Classify inspects one completed call and produces a tagged Result.
// Transport failures and 500s are server errors; other non-2xx statuses
// are domain errors only when data passes the ErrorResponse shape check;
// a 2xx whose body is not a well-formed envelope is a server error, since
// every platform response is enveloped.
func Classify[T any](res *http.Response, err error) Result[T] {
	if err != nil {
		return Result[T]{Outcome: ServerError, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Result[T]{Outcome: ServerError, Err: fmt.Errorf("read response body: %w", err)}
	}

	if res.StatusCode/100 == 2 {
		var env model.Envelope[T]
		if err := json.Unmarshal(body, &env); err != nil {
			return Result[T]{
				Outcome: ServerError,
				Err:     fmt.Errorf("status %d with malformed envelope: %w", res.StatusCode, err),
			}
		}
		return Result[T]{Outcome: Success, Data: env.Data}
	}

	if res.StatusCode != http.StatusInternalServerError {
		var env model.Envelope[model.ErrorResponse]
		if err := json.Unmarshal(body, &env); err == nil && env.Data.WellFormed() {
			domain := env.Data
			return Result[T]{Outcome: DomainError, Domain: &domain}
		}
	}

	return Result[T]{
		Outcome: ServerError,
		Err:     fmt.Errorf("platform returned status %d: %s", res.StatusCode, body),
	}
}
