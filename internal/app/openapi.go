package app

import "net/http"

// GetOpenAPISpec serves the API contract the router was generated from.
func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, app.openapi, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
