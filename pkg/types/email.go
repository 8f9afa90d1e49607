package types

// Email is one processed or pending message. ID is supplied by the caller,
// typically the source mailbox's message identifier. SenderEmail refers to
// User.Email but is only checked when foreign keys are enforced; a nil sender
// is stored as NULL and always passes that check.
type Email struct {
	ID          string   `json:"id"`
	SenderEmail *string  `json:"sender_email"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Type        *string  `json:"type"`
	Urgency     *float64 `json:"urgency"`
	Sentiment   *string  `json:"sentiment"`
	Intent      *string  `json:"intent"`
	ActionsDone *string  `json:"actions_done"`
	Processed   bool     `json:"processed"`
}

// Validate checks the fields the catalog cannot check itself.
// Returns ErrInvalidID for an empty ID and ErrInvalidData for an urgency
// outside [MinUrgency, MaxUrgency].
func (e *Email) Validate() error {
	if e.ID == "" {
		return ErrInvalidID
	}
	if e.Urgency != nil && !validUrgency(*e.Urgency) {
		return ErrInvalidData
	}
	return nil
}
