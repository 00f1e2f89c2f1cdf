// Package model holds the entities and request/response payloads of the API.
package model

// MessageResponse is the body of write endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
