package dto

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AcceptInviteRequest completes registration from an invitation link
type AcceptInviteRequest struct {
	FirstName string `json:"firstname" validate:"required,notblank,max=100"`
	LastName  string `json:"lastname" validate:"required,notblank,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateMemberRequest is an admin edit of a family member; omitted fields stay unchanged
type UpdateMemberRequest struct {
	FirstName *string `json:"firstname" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"lastname" validate:"omitempty,notblank,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Role      *string `json:"role" validate:"omitempty,role"`
}

type InviteResponse struct {
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}
