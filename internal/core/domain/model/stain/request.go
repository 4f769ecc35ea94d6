package stain

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through the NewRequest factory method.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Request is the aggregate root for a stain-treatment request. Customers file
// one against a garment, optionally tied to an existing order, and staff walk
// it through review to a treated-or-declined resolution.
//
// Request follows these invariants:
//   - Must have a valid unique identifier
//   - Must describe the garment and the stain
//   - Status transitions follow the review workflow
//   - Can only be created through NewRequest or RestoreRequest
type Request struct {
	id kernel.UUID

	// orderID links the request to an order (nil for walk-ins)
	orderID *kernel.UUID

	garment     string
	description string

	// resolutionNote is the staff note recorded at treat/decline time
	resolutionNote string

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewRequest creates a new stain-treatment request in Submitted status.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - orderID: Optional originating order (validated when present)
//   - garment: The garment description (must be non-empty)
//   - description: What the stain is and where (must be non-empty)
//   - createdAt: Submission timestamp (must be non-zero)
func NewRequest(id kernel.UUID, orderID *kernel.UUID, garment, description string, createdAt time.Time) (*Request, error) {
	return newRequest(id, orderID, garment, description, Submitted, "", createdAt)
}

// RestoreRequest reconstructs a Request from persistence with an explicit
// status and resolution note. Intended for repository implementations only.
func RestoreRequest(
	id kernel.UUID,
	orderID *kernel.UUID,
	garment, description string,
	status Status,
	resolutionNote string,
	createdAt time.Time,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return newRequest(id, orderID, garment, description, status, resolutionNote, createdAt)
}

func newRequest(
	id kernel.UUID,
	orderID *kernel.UUID,
	garment, description string,
	status Status,
	resolutionNote string,
	createdAt time.Time,
) (*Request, error) {
	request := &Request{
		status:         status,
		resolutionNote: resolutionNote,
		isConstructed:  true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setOrderID(orderID),
		request.setGarment(garment),
		request.setDescription(description),
		request.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID returns the originating order's ID, or nil for walk-in requests.
func (r *Request) OrderID() *kernel.UUID {
	return r.orderID
}

// Garment returns the garment description.
func (r *Request) Garment() string {
	return r.garment
}

// Description returns the stain description.
func (r *Request) Description() string {
	return r.description
}

// ResolutionNote returns the staff note recorded at resolution.
// Empty until the request is treated or declined.
func (r *Request) ResolutionNote() string {
	return r.resolutionNote
}

// Status returns the current review status.
func (r *Request) Status() Status {
	return r.status
}

// CreatedAt returns the submission timestamp.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Review marks the request as inspected by staff.
//
// Returns an error if the request is not in Submitted status.
func (r *Request) Review() error {
	newStatus, err := r.status.Review()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Treat resolves the request as treated, recording the staff note.
//
// Returns an error if the request is not in Reviewed status.
func (r *Request) Treat(note string) error {
	newStatus, err := r.status.Treat()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.resolutionNote = note
	return nil
}

// Decline resolves the request as declined. A non-empty note explaining the
// decision is required.
func (r *Request) Decline(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("resolutionNote")
	}

	newStatus, err := r.status.Decline()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.resolutionNote = note
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setGarment(garment string) error {
	if garment == "" {
		return errs.NewValueIsRequiredError("garment")
	}
	r.garment = garment
	return nil
}

func (r *Request) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

func (r *Request) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
