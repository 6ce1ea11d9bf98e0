package api

import (
	"net/http"

	"oj_client/internal/common"
)

// Response is a successful call: the decoded envelope and the raw response.
// Raw is nil when the response was synthesized locally.
type Response struct {
	Body common.Envelope
	Raw  *http.Response
}

// Decode unmarshals the envelope's data into v.
func (r *Response) Decode(v interface{}) error {
	return r.Body.Decode(v)
}

// NewLocalResponse wraps data in a success envelope without a transport
// response.
func NewLocalResponse(data interface{}) (*Response, error) {
	env, err := common.NewEnvelope(data)
	if err != nil {
		return nil, err
	}
	return &Response{Body: env}, nil
}
