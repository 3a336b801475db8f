package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name    string    `json:"name" validate:"required,notblank,max=100"`
	Shared  bool      `json:"shared"`
	IconID  uuid.UUID `json:"iconId" validate:"required"`
	ColorID uuid.UUID `json:"colorId" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name    *string    `json:"name" validate:"omitempty,notblank,max=100"`
	Shared  *bool      `json:"shared"`
	IconID  *uuid.UUID `json:"iconId"`
	ColorID *uuid.UUID `json:"colorId"`
}
