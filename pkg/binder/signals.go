package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DatastarRequestHeader is sent by the Datastar client on every backend action.
const DatastarRequestHeader = "Datastar-Request"

// Signals binds the signal store of a Datastar request into the `json` tags of
// a struct. GET requests carry signals in the "datastar" query parameter, other
// methods in the JSON body.
//
// Requests without the Datastar-Request header yield ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDatastarRequest(r) {
			return ErrBinderNotApplicable
		}

		if r.Method == http.MethodGet && !r.URL.Query().Has("datastar") {
			return nil
		}
		if r.Method != http.MethodGet && r.ContentLength == 0 {
			return nil
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

func isDatastarRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(DatastarRequestHeader), "true")
}
