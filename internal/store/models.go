package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] and uuid[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// Contains reports whether the array holds value
func (a StringArray) Contains(value string) bool {
	for _, v := range a {
		if v == value {
			return true
		}
	}
	return false
}

// Address is a shipping address stored as JSONB
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IsZero reports whether the address has no usable delivery line
func (a *Address) IsZero() bool {
	return a == nil || a.Line1 == "" || a.City == "" || a.Country == ""
}

// Value implements the driver.Valuer interface for Address
func (a *Address) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for Address
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for Address")
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Winner is one finalized rank of a competition or period
type Winner struct {
	Rank         int        `json:"rank"`
	CreatorID    uuid.UUID  `json:"creator_id"`
	DisplayName  string     `json:"display_name"`
	Value        float64    `json:"value"`
	RedemptionID *uuid.UUID `json:"redemption_id,omitempty"`
}

// Winners is the JSONB list of winners recorded at finalize
type Winners []Winner

// Value implements the driver.Valuer interface for Winners
func (w Winners) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements the sql.Scanner interface for Winners
func (w *Winners) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for Winners")
	}
	return json.Unmarshal(bytes, w)
}

// ============================================================================
// Entities
// ============================================================================

type Creator struct {
	ID              uuid.UUID `db:"id" json:"id"`
	DisplayName     string    `db:"display_name" json:"display_name"`
	Handle          string    `db:"handle" json:"handle"`
	Email           string    `db:"email" json:"email"`
	ShippingAddress *Address  `db:"shipping_address" json:"shipping_address,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type Counter struct {
	Name      string    `db:"name" json:"name"`
	Value     int       `db:"value" json:"value"`
	Year      int       `db:"year" json:"year"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Submission struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	DisplayID       string     `db:"display_id" json:"display_id"`
	CreatorID       uuid.UUID  `db:"creator_id" json:"creator_id"`
	Kind            string     `db:"kind" json:"kind"`
	Fingerprint     string     `db:"fingerprint" json:"fingerprint"`
	URL             *string    `db:"url" json:"url,omitempty"`
	StoragePath     *string    `db:"storage_path" json:"storage_path,omitempty"`
	PeriodKey       string     `db:"period_key" json:"period_key"`
	Status          string     `db:"status" json:"status"`
	ClaimedTier     *string    `db:"claimed_tier" json:"claimed_tier,omitempty"`
	VerifiedViews   *int64     `db:"verified_views" json:"verified_views,omitempty"`
	RejectionReason *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	CollaborationID *uuid.UUID `db:"collaboration_id" json:"collaboration_id,omitempty"`
	CompetitionID   *uuid.UUID `db:"competition_id" json:"competition_id,omitempty"`
	ReviewedBy      *uuid.UUID `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

type LeaderboardEntry struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	PeriodKey   string    `db:"period_key" json:"period_key"`
	CreatorID   uuid.UUID `db:"creator_id" json:"creator_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Handle      string    `db:"handle" json:"handle"`
	Value       float64   `db:"value" json:"value"`
	Rank        int       `db:"rank" json:"rank"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Competition struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	DisplayID   string     `db:"display_id" json:"display_id"`
	Slug        string     `db:"slug" json:"slug"`
	Type        string     `db:"type" json:"type"`
	Name        string     `db:"name" json:"name"`
	Status      string     `db:"status" json:"status"`
	StartsAt    time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt      time.Time  `db:"ends_at" json:"ends_at"`
	Winners     Winners    `db:"winners" json:"winners,omitempty"`
	CreatedBy   uuid.UUID  `db:"created_by" json:"created_by"`
	EndedAt     *time.Time `db:"ended_at" json:"ended_at,omitempty"`
	FinalizedAt *time.Time `db:"finalized_at" json:"finalized_at,omitempty"`
	FinalizedBy *uuid.UUID `db:"finalized_by" json:"finalized_by,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type Reward struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Description      *string   `db:"description" json:"description,omitempty"`
	Category         string    `db:"category" json:"category"`
	Tier             *string   `db:"tier" json:"tier,omitempty"`
	Rank             *int      `db:"rank" json:"rank,omitempty"`
	FulfillmentType  string    `db:"fulfillment_type" json:"fulfillment_type"`
	CashAmountCents  int64     `db:"cash_amount_cents" json:"cash_amount_cents"`
	StoreCreditCents int64     `db:"store_credit_cents" json:"store_credit_cents"`
	ProductName      *string   `db:"product_name" json:"product_name,omitempty"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type Redemption struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	DisplayID          string     `db:"display_id" json:"display_id"`
	CreatorID          uuid.UUID  `db:"creator_id" json:"creator_id"`
	CreatorDisplayName string     `db:"creator_display_name" json:"creator_display_name"`
	CreatorHandle      string     `db:"creator_handle" json:"creator_handle"`
	RewardID           *uuid.UUID `db:"reward_id" json:"reward_id,omitempty"`
	RewardName         string     `db:"reward_name" json:"reward_name"`
	Source             string     `db:"source" json:"source"`
	SourceID           string     `db:"source_id" json:"source_id"`
	FulfillmentType    string     `db:"fulfillment_type" json:"fulfillment_type"`
	Status             string     `db:"status" json:"status"`
	CashAmountCents    int64      `db:"cash_amount_cents" json:"cash_amount_cents"`
	StoreCreditCents   int64      `db:"store_credit_cents" json:"store_credit_cents"`

	PaymentMethod   *string  `db:"payment_method" json:"payment_method,omitempty"`
	PaymentHandle   *string  `db:"payment_handle" json:"payment_handle,omitempty"`
	ShippingAddress *Address `db:"shipping_address" json:"shipping_address,omitempty"`

	TrackingNumber  *string `db:"tracking_number" json:"tracking_number,omitempty"`
	StoreCreditCode *string `db:"store_credit_code" json:"store_credit_code,omitempty"`
	FulfillmentNote *string `db:"fulfillment_note" json:"fulfillment_note,omitempty"`

	ApprovedBy  *uuid.UUID `db:"approved_by" json:"approved_by,omitempty"`
	ClaimedAt   *time.Time `db:"claimed_at" json:"claimed_at,omitempty"`
	FulfilledAt *time.Time `db:"fulfilled_at" json:"fulfilled_at,omitempty"`
	FulfilledBy *uuid.UUID `db:"fulfilled_by" json:"fulfilled_by,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type Collaboration struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	CreatorID     uuid.UUID   `db:"creator_id" json:"creator_id"`
	BrandName     string      `db:"brand_name" json:"brand_name"`
	Status        string      `db:"status" json:"status"`
	SubmissionIDs StringArray `db:"submission_ids" json:"submission_ids"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}
