package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
	patches []TemplPatch
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return fmt.Errorf("%w: signals require a datastar request", ErrBadRequest)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(data); err != nil {
		return err
	}
	return patchAll(sse, s.patches)
}

// Signals merges signals into the client's signal store, then applies the
// element patches. Only valid for Datastar requests; plain requests get
// ErrBadRequest.
//
//	return handler.Signals(map[string]any{"bookingOpen": true},
//		handler.Patch(views.Notice(notice)),
//	)
func Signals(signals any, patches ...TemplPatch) Response {
	return signalsResponse{
		signals: signals,
		patches: patches,
	}
}
