// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MalformedInputError aggregates the per-field failures of a decoded
// request body.
type MalformedInputError struct {
	Fields []string
}

func (e *MalformedInputError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request body"
	}
	return fmt.Sprintf("invalid request body: %s", strings.Join(e.Fields, ", "))
}

// DecodeJSON decodes the request body into dst and validates it against
// its struct tags.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &MalformedInputError{}
	}

	if err := validate.Struct(dst); err != nil {
		var verr validator.ValidationErrors
		if !errors.As(err, &verr) {
			return &MalformedInputError{}
		}

		malformed := new(MalformedInputError)
		for _, f := range verr {
			malformed.Fields = append(malformed.Fields,
				fmt.Sprintf("%s failed on %q", f.Field(), f.Tag()))
		}
		return malformed
	}

	return nil
}
