package panel

import "context"

// Mode is the editor state for one resource screen.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdding
	ModeEditing
)

// Resource binds a record type T and its editable draft type D to the backend
// operations the editor needs. Implementations live alongside their draft
// types in this package.
type Resource[T, D any] interface {
	// Blank returns the template draft for a new record.
	Blank() D
	// Project turns an existing record into its id and an editable draft.
	Project(record T) (int64, D)
	// Validate checks the draft's required fields before any network use.
	Validate(draft D) error
	Create(ctx context.Context, draft D) error
	Update(ctx context.Context, id int64, draft D) error
	Delete(ctx context.Context, id int64) error
}

// Form is the modal editor for one resource screen: at most one draft open at
// a time, moving Closed -> Adding|Editing -> Closed. Save and delete failures
// are captured on the form (the editor stays open) rather than escaping to
// the caller's control flow.
type Form[T, D any] struct {
	resource   Resource[T, D]
	collection *Collection[T]
	mode       Mode
	id         int64
	draft      D
	message    string
}

// NewForm creates a closed Form over a resource and the collection it reloads
// after successful mutations.
func NewForm[T, D any](resource Resource[T, D], collection *Collection[T]) *Form[T, D] {
	return &Form[T, D]{resource: resource, collection: collection}
}

// Mode returns the current editor state.
func (f *Form[T, D]) Mode() Mode { return f.mode }

// Open reports whether an editor is showing.
func (f *Form[T, D]) Open() bool { return f.mode != ModeClosed }

// Message returns the current validation or request failure text, empty when
// the last operation succeeded.
func (f *Form[T, D]) Message() string { return f.message }

// Draft returns the open draft for field binding. Only meaningful while the
// editor is open.
func (f *Form[T, D]) Draft() *D { return &f.draft }

// OpenAdd starts a new-record draft from the resource's blank template.
func (f *Form[T, D]) OpenAdd() {
	f.mode = ModeAdding
	f.id = 0
	f.draft = f.resource.Blank()
	f.message = ""
}

// OpenEdit starts an edit draft projected from an existing record.
func (f *Form[T, D]) OpenEdit(record T) {
	f.mode = ModeEditing
	f.id, f.draft = f.resource.Project(record)
	f.message = ""
}

// Close abandons the open draft.
func (f *Form[T, D]) Close() {
	f.mode = ModeClosed
	f.id = 0
	var zero D
	f.draft = zero
	f.message = ""
}

// Save validates the draft locally, then creates or updates depending on how
// the editor was opened. Validation failures never reach the network. On
// success the editor closes and the collection reloads its current page, so
// the user's position in the list is preserved. On failure the editor stays
// open with the failure message and the returned error mirrors it.
func (f *Form[T, D]) Save(ctx context.Context) error {
	if f.mode == ModeClosed {
		return nil
	}

	if err := f.resource.Validate(f.draft); err != nil {
		f.message = err.Error()
		return err
	}

	var err error
	if f.mode == ModeEditing {
		err = f.resource.Update(ctx, f.id, f.draft)
	} else {
		err = f.resource.Create(ctx, f.draft)
	}
	if err != nil {
		f.message = err.Error()
		return err
	}

	f.Close()
	return f.collection.Reload(ctx)
}

// Delete removes the record with the given id after the confirm callback
// approves it; a declined confirmation aborts with no network use. Success
// reloads the current page. Deleting the last row of a trailing page leaves
// that page empty rather than stepping back a page.
func (f *Form[T, D]) Delete(ctx context.Context, id int64, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}

	if err := f.resource.Delete(ctx, id); err != nil {
		f.message = err.Error()
		return err
	}

	f.message = ""
	return f.collection.Reload(ctx)
}
