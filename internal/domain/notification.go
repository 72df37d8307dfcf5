package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what a review event is about
type NotificationKind string

const (
	NotificationNitpick  NotificationKind = "nitpick"
	NotificationComment  NotificationKind = "comment"
	NotificationApproval NotificationKind = "approval"
)

// NotificationAudience identifies who a review event is fanned out to
type NotificationAudience string

const (
	// AudienceEveryone reaches everyone on the submission's thread.
	AudienceEveryone NotificationAudience = "everyone"
	// AudienceSource reaches the submission's instigator chain.
	AudienceSource NotificationAudience = "source"
)

// ReviewEvent is the fact handed to the notification channel after a
// workflow mutation has been committed.
type ReviewEvent struct {
	SubmissionID uuid.UUID            `json:"submissionId"`
	Exercise     string               `json:"exercise"`
	ActorID      uuid.UUID            `json:"actorId"`
	ActorName    string               `json:"actorName"`
	Kind         NotificationKind     `json:"kind"`
	Audience     NotificationAudience `json:"audience"`
	OccurredAt   time.Time            `json:"occurredAt"`
}

// MailMessage triggers one direct transactional email. Delivery mechanics
// live outside this service; only the trigger contract is defined here.
type MailMessage struct {
	Kind         NotificationKind `json:"kind"`
	InstigatorID uuid.UUID        `json:"instigatorId"`
	Instigator   string           `json:"instigator"`
	RecipientID  uuid.UUID        `json:"recipientId"`
	SubmissionID uuid.UUID        `json:"submissionId"`
	SiteRoot     string           `json:"siteRoot"`
}
