// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidReqBody = "Invalid request body"
	ErrMsgInvalidID      = "Invalid record id"
	ErrMsgNotFound       = "Record not found"
	ErrMsgAdminRequired  = "Admin role required"
	ErrMsgServer         = "Internal server error"
)

// Upload error messages
const (
	ErrMsgInvalidUploadKey = "Invalid upload key"
	ErrMsgEmptyUpload      = "Upload body is empty"
	ErrMsgFileNotFound     = "File not found"
)
