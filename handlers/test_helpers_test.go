package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wires a request and recorder into a RequestEvent so
// handlers can be invoked directly, without going through the router.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := new(core.RequestEvent)
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}
