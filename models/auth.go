// models/auth.go
package models

// AuthenticateRequest exchanges a Google identity credential for a session
// token. Audience is the OAuth client id the credential was issued for.
type AuthenticateRequest struct {
	Credential string `json:"credential"`
	Audience   string `json:"clientId"`
}

// VerifyTokenRequest re-validates a previously issued session token against
// the live client record.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  Client `json:"user"`
}

// CreateFileRequest is the file upload payload. RemoveBackground and Crop are
// pointers so a missing flag is distinguishable from an explicit false.
type CreateFileRequest struct {
	FileSrc          string `json:"fileSrc"`
	FullFileName     string `json:"fullFileName"`
	RemoveBackground *bool  `json:"rmbg"`
	Crop             *bool  `json:"crop"`
}

// MoveFileRequest moves a file between two categories.
type MoveFileRequest struct {
	NewCategoryID string `json:"newCategoryId"`
}

// RenameFileRequest renames a file in place.
type RenameFileRequest struct {
	Name string `json:"name"`
}

// CategoryRequest creates or renames a category.
type CategoryRequest struct {
	Name string `json:"name"`
}
