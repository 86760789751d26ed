// Package domain defines the core domain models for the dialogue engine.
package domain

// Modality is the channel a training session runs over.
type Modality string

const (
	ModalityCall Modality = "call"
	ModalityChat Modality = "chat"
)

// Role identifies a party in the role play.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// Complement returns the counterpart role for a trainee role.
// Anything unrecognized is treated as customer, so the AI plays staff.
func (r Role) Complement() Role {
	if r == RoleStaff {
		return RoleCustomer
	}
	return RoleStaff
}

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerAI   Speaker = "ai"
	SpeakerUser Speaker = "user"
)
