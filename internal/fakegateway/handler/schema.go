package handler

import "github.com/faveomobile/helpdesk-client/internal/fakegateway/store"

// The hosted backend reports errors as {"message": ...}; the client surfaces
// that message verbatim, so the fake uses the same envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types (query-parameter bound) ---

type loginRequest struct {
	Email    string `query:"email"    validate:"required,email"`
	Password string `query:"password" validate:"required"`
}

type registerRequest struct {
	FirstName string `query:"first_name" validate:"required"`
	LastName  string `query:"last_name"  validate:"required"`
	Email     string `query:"email"      validate:"required,email"`
	Password  string `query:"password"   validate:"required"`
	Scenario  string `query:"scenario"   validate:"required,oneof=create"`
	Category  string `query:"category"   validate:"required,oneof=requester"`
	Panel     string `query:"panel"      validate:"required,oneof=client"`
}

type forgotPasswordRequest struct {
	Email string `query:"email" validate:"required,email"`
}

// --- Response envelopes ---

// userPayload is the wire shape of one directory record.
type userPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
}

type loginResponse struct {
	Data struct {
		Token string       `json:"token"`
		User  *userPayload `json:"user,omitempty"`
	} `json:"data"`
}

// exportResponse is the doubly-nested list envelope the backend returns.
type exportResponse struct {
	Data struct {
		Data []userPayload `json:"data"`
	} `json:"data"`
}

type viewResponse struct {
	Data *userPayload `json:"data"`
}

func toPayload(u *store.User) *userPayload {
	if u == nil {
		return nil
	}
	return &userPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
	}
}
