package reservation

import "github.com/google/uuid"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// State is the lifecycle of a request. An approved request always carries its block.
type State interface {
	Status() Status
	isState()
}

type Pending struct{}

type Approved struct {
	BlockID uuid.UUID
}

type Rejected struct{}

func (Pending) Status() Status  { return StatusPending }
func (Approved) Status() Status { return StatusApproved }
func (Rejected) Status() Status { return StatusRejected }

func (Pending) isState()  {}
func (Approved) isState() {}
func (Rejected) isState() {}

// StateFrom rebuilds a State from its stored columns.
func StateFrom(status Status, blockID *uuid.UUID) (State, error) {
	switch status {
	case StatusPending:
		return Pending{}, nil
	case StatusApproved:
		if blockID == nil {
			return nil, ErrApprovedWithoutBlock
		}
		return Approved{BlockID: *blockID}, nil
	case StatusRejected:
		return Rejected{}, nil
	default:
		return nil, ErrInvalidStatus
	}
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

func (a Action) Target() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
