// Package api defines the two response envelopes the frontend expects:
// mutations answer {"success":true}, failures answer {"error":"..."}.
// Listings return their payload bare, with no wrapper.
package api

// Status acknowledges a mutation.
type Status struct {
	Success bool `json:"success" doc:"Always true on success" example:"true"`
}

// OK is the canonical success acknowledgement.
func OK() Status {
	return Status{Success: true}
}

// ErrorBody carries a single human-readable message in the application's
// working language.
type ErrorBody struct {
	Error string `json:"error" doc:"What went wrong" example:"Gagal menyimpan data"`
}
