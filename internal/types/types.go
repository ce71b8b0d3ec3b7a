// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type User struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

type Company struct {
	ID        int64      `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Slug      string     `db:"slug" json:"slug"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`

	// Billing fields, managed by the checkout collaborator.
	SubscriptionID     *string `db:"subscription_id" json:"subscription_id,omitempty"`
	PlanName           *string `db:"plan_name" json:"plan_name,omitempty"`
	SubscriptionStatus *string `db:"subscription_status" json:"subscription_status,omitempty"`
}

type Project struct {
	ID          int64      `db:"id" json:"id"`
	CompanyID   int64      `db:"company_id" json:"company_id"`
	Name        string     `db:"name" json:"name"`
	Slug        string     `db:"slug" json:"slug"`
	Description string     `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`
}

type CompanyMember struct {
	ID        int64     `db:"id" json:"id"`
	CompanyID int64     `db:"company_id" json:"company_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}

type ProjectMember struct {
	ID        int64     `db:"id" json:"id"`
	ProjectID int64     `db:"project_id" json:"project_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}

// Agent is a registered remote transfer worker. It is created in a
// pending state carrying a one-time registration token, and becomes
// active once the token has been exchanged for a per-agent secret.
type Agent struct {
	ID          int64  `db:"id" json:"id"`
	ProjectID   int64  `db:"project_id" json:"project_id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`

	AgentID                    string     `db:"agent_id" json:"agent_id"`
	SecretHash                 string     `db:"secret_hash" json:"-"`
	RegistrationToken          *string    `db:"registration_token" json:"-"`
	RegistrationTokenExpiresAt *time.Time `db:"registration_token_expires_at" json:"-"`
	IsActive                   bool       `db:"is_active" json:"is_active"`

	Capabilities []string   `db:"capabilities" json:"capabilities"`
	LastSeenAt   *time.Time `db:"last_seen_at" json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

type CompanyInvitation struct {
	ID        int64     `db:"id" json:"id"`
	CompanyID int64     `db:"company_id" json:"company_id"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	InvitedBy int64     `db:"invited_by" json:"invited_by"`
	InvitedAt time.Time `db:"invited_at" json:"invited_at"`
	Status    string    `db:"status" json:"status"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

type ProjectInvitation struct {
	ID        int64     `db:"id" json:"id"`
	ProjectID int64     `db:"project_id" json:"project_id"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	InvitedBy int64     `db:"invited_by" json:"invited_by"`
	InvitedAt time.Time `db:"invited_at" json:"invited_at"`
	Status    string    `db:"status" json:"status"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

type AgentActivityLog struct {
	ID        int64             `db:"id" json:"id"`
	AgentID   int64             `db:"agent_id" json:"agent_id"`
	Action    string            `db:"action" json:"action"`
	Metadata  map[string]string `db:"metadata" json:"metadata"`
	IPAddress string            `db:"ip_address" json:"ip_address,omitempty"`
	Timestamp time.Time         `db:"timestamp" json:"timestamp"`
}

// TelemetrySample is one telemetry report from an agent. Metric fields
// mirror what the transfer engine publishes; unknown extras are kept in
// Extra verbatim.
type TelemetrySample struct {
	ID                int64              `db:"id" json:"id"`
	AgentID           int64              `db:"agent_id" json:"agent_id"`
	Throughput        float64            `db:"throughput" json:"throughput"`
	RTTMillis         float64            `db:"rtt_millis" json:"rtt_millis"`
	PacketLoss        float64            `db:"packet_loss" json:"packet_loss"`
	CongestionWindow  float64            `db:"congestion_window" json:"congestion_window"`
	BufferUtilization float64            `db:"buffer_utilization" json:"buffer_utilization"`
	CPUUsage          float64            `db:"cpu_usage" json:"cpu_usage"`
	MemoryUsage       float64            `db:"memory_usage" json:"memory_usage"`
	ActiveStreams     int                `db:"active_streams" json:"active_streams"`
	Extra             map[string]float64 `db:"extra" json:"extra,omitempty"`
	Timestamp         time.Time          `db:"timestamp" json:"timestamp"`
}

// Company roles, in decreasing order of privilege for management rules.
const (
	CompanyRoleOwner        = "owner"
	CompanyRoleBillingAdmin = "billing_admin"
	CompanyRoleAdmin        = "admin"
	CompanyRoleMember       = "member"
)

// Project roles.
const (
	ProjectRoleOwner     = "project_owner"
	ProjectRoleAdmin     = "project_admin"
	ProjectRoleDeveloper = "developer"
	ProjectRoleAnalyst   = "analyst"
)

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Activity actions recorded in the agent activity log and audit trail.
const (
	ActivitySignUp               = "SIGN_UP"
	ActivitySignIn               = "SIGN_IN"
	ActivitySignOut              = "SIGN_OUT"
	ActivityUpdatePassword       = "UPDATE_PASSWORD"
	ActivityCreateAgent          = "CREATE_AGENT"
	ActivityRegisterAgent        = "REGISTER_AGENT"
	ActivityAgentAuthenticated   = "AGENT_AUTHENTICATED"
	ActivityAuthenticationFailed = "AUTHENTICATION_FAILED"
	ActivityRotateAgentSecret    = "ROTATE_AGENT_SECRET"
	ActivityTelemetryReport      = "TELEMETRY_REPORT"
)

func ValidCompanyRole(role string) bool {
	switch role {
	case CompanyRoleOwner, CompanyRoleBillingAdmin, CompanyRoleAdmin, CompanyRoleMember:
		return true
	}
	return false
}

func ValidProjectRole(role string) bool {
	switch role {
	case ProjectRoleOwner, ProjectRoleAdmin, ProjectRoleDeveloper, ProjectRoleAnalyst:
		return true
	}
	return false
}
