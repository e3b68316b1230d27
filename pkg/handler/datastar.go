package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept value Datastar sends for backend actions.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set to "true" on every Datastar backend action.
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam carries the signals of GET actions.
	DataStarQueryParam = "datastar"
)

// PatchPrepend inserts patched elements at the start of the target, so
// newer toasts stack above older ones.
const PatchPrepend = datastar.ElementPatchModePrepend

// IsDataStar reports whether r was issued by the Datastar client and expects
// an event stream back.
func IsDataStar(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true") {
		return true
	}

	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}

	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE opens the Datastar event stream for r.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
