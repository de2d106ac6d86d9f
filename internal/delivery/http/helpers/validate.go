package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest with DisallowUnknownFields.
// On decode failure it writes a 400 JSON error and returns false. Field-level
// validation happens in the services via the validation rulesets, so only
// malformed JSON is rejected here.
// Callers should return immediately when DecodeJSON returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	return true
}
