package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
)

// KostEditor edits the kost profile singleton. There is no list behind it,
// just load and save.
type KostEditor struct {
	admin   *api.AdminService
	draft   models.Kost
	loaded  bool
	message string
}

// NewKostEditor creates an unloaded KostEditor.
func NewKostEditor(admin *api.AdminService) *KostEditor {
	return &KostEditor{admin: admin}
}

// Load fetches the profile into the draft. A failure keeps any previously
// loaded draft.
func (e *KostEditor) Load(ctx context.Context) error {
	kost, err := e.admin.Kost(ctx)
	if err != nil {
		e.message = err.Error()
		return err
	}
	e.draft = *kost
	e.loaded = true
	e.message = ""
	return nil
}

// Loaded reports whether a profile has been fetched.
func (e *KostEditor) Loaded() bool { return e.loaded }

// Draft returns the editable profile for field binding.
func (e *KostEditor) Draft() *models.Kost { return &e.draft }

// Message returns the last failure text, empty after a success.
func (e *KostEditor) Message() string { return e.message }

// Save validates and writes the profile back.
func (e *KostEditor) Save(ctx context.Context) error {
	if strings.TrimSpace(e.draft.Name) == "" {
		err := fmt.Errorf("%w: kost name is required", shared.ErrValidation)
		e.message = err.Error()
		return err
	}
	if err := e.admin.SaveKost(ctx, &e.draft); err != nil {
		e.message = err.Error()
		return err
	}
	e.message = ""
	return nil
}
