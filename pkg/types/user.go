package types

// Defaults applied by the schema to a freshly created user.
const (
	DefaultEmailCount = 0
	DefaultAvgUrgency = 0.5
)

// Urgency scores are bounded to [MinUrgency, MaxUrgency].
const (
	MinUrgency = 0.0
	MaxUrgency = 1.0
)

// User is a distinct email sender known to the agent. Email is the only
// stable identity; every other field is a summary statistic maintained by the
// analysis component. Optional columns are nil when unset.
type User struct {
	Email            string  `json:"email"`
	Name             *string `json:"name"`
	EmailCount       int64   `json:"email_count"`
	AvgUrgency       float64 `json:"avg_urgency"`
	CommonEmailType  *string `json:"common_email_type"`
	CommonEmailTopic *string `json:"common_email_topic"`
	Role             *string `json:"role"`
}

// UserUpdate carries a partial update for a user. A nil field leaves the
// stored value unchanged; a non-nil field replaces it.
type UserUpdate struct {
	Name             *string
	EmailCount       *int64
	AvgUrgency       *float64
	CommonEmailType  *string
	CommonEmailTopic *string
	Role             *string
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.EmailCount == nil && u.AvgUrgency == nil &&
		u.CommonEmailType == nil && u.CommonEmailTopic == nil && u.Role == nil
}

// Validate returns ErrInvalidData when a supplied statistic is out of range.
func (u UserUpdate) Validate() error {
	if u.EmailCount != nil && *u.EmailCount < 0 {
		return ErrInvalidData
	}
	if u.AvgUrgency != nil && !validUrgency(*u.AvgUrgency) {
		return ErrInvalidData
	}
	return nil
}

func validUrgency(v float64) bool {
	return v >= MinUrgency && v <= MaxUrgency
}

// StringPtr returns a pointer to s, for building optional fields inline.
func StringPtr(s string) *string { return &s }

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 { return &v }

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }
