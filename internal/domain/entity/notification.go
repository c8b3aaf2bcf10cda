package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies the logical event a notification reports.
type NotificationKind string

const (
	// KindEnrollmentRequest asks a customer to join a program.
	KindEnrollmentRequest NotificationKind = "enrollment_request"
	// KindEnrollmentDecision tells a business how the customer decided.
	KindEnrollmentDecision NotificationKind = "enrollment_decision"
	// KindCardReady tells a customer their card is provisioned.
	KindCardReady NotificationKind = "card_ready"
	// KindPointsAwarded tells a customer points were added to their card.
	KindPointsAwarded NotificationKind = "points_awarded"
)

// NotificationSubjects identifies the parties a notification is about.
// Deduplication matches on kind plus these three ids.
type NotificationSubjects struct {
	CustomerID uuid.UUID `json:"customer_id"`
	BusinessID uuid.UUID `json:"business_id"`
	ProgramID  uuid.UUID `json:"program_id"`
}

// NotificationPayload is the tagged variant carried by a notification.
// Each kind has its own payload shape so templates and dedup logic are
// checked at compile time instead of reaching into a free-form blob.
type NotificationPayload interface {
	Kind() NotificationKind
	// Render produces the standardized title and body for this payload.
	Render() (title, body string)
}

// EnrollmentRequestPayload invites a customer into a program.
type EnrollmentRequestPayload struct {
	ApprovalRequestID uuid.UUID `json:"approval_request_id"`
	BusinessName      string    `json:"business_name"`
	ProgramName       string    `json:"program_name"`
}

func (p EnrollmentRequestPayload) Kind() NotificationKind { return KindEnrollmentRequest }

func (p EnrollmentRequestPayload) Render() (string, string) {
	return "加入集點計畫邀請",
		fmt.Sprintf("%s 邀請您加入「%s」集點計畫", p.BusinessName, p.ProgramName)
}

// EnrollmentDecisionPayload reports the customer's decision to the business.
type EnrollmentDecisionPayload struct {
	ApprovalRequestID uuid.UUID        `json:"approval_request_id"`
	Decision          ApprovalDecision `json:"decision"`
	CustomerName      string           `json:"customer_name"`
	ProgramName       string           `json:"program_name"`
}

func (p EnrollmentDecisionPayload) Kind() NotificationKind { return KindEnrollmentDecision }

func (p EnrollmentDecisionPayload) Render() (string, string) {
	if p.Decision == DecisionApprove {
		return "顧客已接受邀請",
			fmt.Sprintf("%s 已加入「%s」集點計畫", p.CustomerName, p.ProgramName)
	}

	return "顧客已婉拒邀請",
		fmt.Sprintf("%s 婉拒了「%s」集點計畫的邀請", p.CustomerName, p.ProgramName)
}

// CardReadyPayload tells a customer their loyalty card is ready to use.
type CardReadyPayload struct {
	CardID      uuid.UUID `json:"card_id"`
	CardNumber  string    `json:"card_number"`
	ProgramName string    `json:"program_name"`
}

func (p CardReadyPayload) Kind() NotificationKind { return KindCardReady }

func (p CardReadyPayload) Render() (string, string) {
	return "集點卡已開通",
		fmt.Sprintf("您的「%s」集點卡（卡號 %s）已開通，開始集點吧！", p.ProgramName, p.CardNumber)
}

// PointsAwardedPayload reports a point award to the customer.
type PointsAwardedPayload struct {
	CardID      uuid.UUID `json:"card_id"`
	Points      int64     `json:"points"`
	NewBalance  int64     `json:"new_balance"`
	ProgramName string    `json:"program_name"`
}

func (p PointsAwardedPayload) Kind() NotificationKind { return KindPointsAwarded }

func (p PointsAwardedPayload) Render() (string, string) {
	return "獲得點數",
		fmt.Sprintf("您在「%s」獲得 %d 點，目前累積 %d 點", p.ProgramName, p.Points, p.NewBalance)
}

// Notification is a message to a customer or business, possibly requiring
// action, possibly carrying an approval request.
type Notification struct {
	ID             uuid.UUID            `json:"id"`              // The Global Unique Identifier (GUID) for the notification.
	Kind           NotificationKind     `json:"kind"`            // The logical event this notification reports.
	RecipientID    uuid.UUID            `json:"recipient_id"`    // The account the notification is addressed to.
	Subjects       NotificationSubjects `json:"subjects"`        // The parties this notification is about.
	Title          string               `json:"title"`           // Rendered title from the kind's template.
	Body           string               `json:"body"`            // Rendered body from the kind's template.
	Payload        string               `json:"payload"`         // JSON-encoded payload variant for the delivery subsystem.
	RequiresAction bool                 `json:"requires_action"` // True when the recipient must respond (enrollment requests).
	IsRead         bool                 `json:"is_read"`         // True once the recipient has seen the notification.
	IsActioned     bool                 `json:"is_actioned"`     // True once the linked action completed.
	CreatedAt      time.Time            `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time            `json:"updated_at"`      // Timestamp of the last modification.
}
