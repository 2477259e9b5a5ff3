package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Error is a GraphQL-level error returned by the backend with HTTP 200.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []*Error        `json:"errors,omitempty"`
}

const (
	authorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// do posts one GraphQL operation and decodes resp.data into out. A non-200
// reply or transport failure maps to errs.ErrBackend; GraphQL errors come
// back typed so callers can keep their user-facing message generic.
func (s *Service) do(ctx context.Context, token string, req request, out any) error {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(req); err != nil {
		return err
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URI, b)
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	if token != "" {
		r.Header.Set(authorizationHeader, bearer+token)
	}
	resp, err := s.client.Do(r)
	if err != nil {
		return errors.Wrap(errs.ErrBackend, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(errs.ErrBackend, "unexpected status %d", resp.StatusCode)
	}
	var gr response
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return errors.Wrap(errs.ErrBackend, err.Error())
	}
	if len(gr.Errors) > 0 {
		return gr.Errors[0]
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(gr.Data, out)
}
