package models

import (
	"time"
)

// UserType labels a profile as admin or regular user.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

// AccountType records which commercial path created the account.
type AccountType string

const (
	AccountTypePremium      AccountType = "Premium"
	AccountTypeTrial        AccountType = "Trial"
	AccountTypeAdminCreated AccountType = "Admin-Created"
)

// AccountStatus is a two-state lifecycle flag.
type AccountStatus string

const (
	StatusActive   AccountStatus = "Active"
	StatusInactive AccountStatus = "Inactive"
)

// CreationEndpoint is the provenance tag recording which operation
// created or last provisioned a profile.
type CreationEndpoint string

const (
	EndpointGrantAdmin         CreationEndpoint = "grant_admin"
	EndpointCreateUser         CreationEndpoint = "create_user"
	EndpointGHLCreateUser      CreationEndpoint = "ghl_create_user"
	EndpointGHLCreateTrialUser CreationEndpoint = "ghl_create_trial_user"
)

// Hugger flag values. The flag is opaque product data; this service
// only stores it.
const (
	HuggerYes = "Yes"
	HuggerNo  = "No"
)

// User is the profile document stored in Firestore under users/{uid}.
// The uid always mirrors the identity provider's uid for the same
// logical user.
type User struct {
	UID                 string           `firestore:"uid" json:"uid"`
	Email               string           `firestore:"email" json:"email"`
	UserType            UserType         `firestore:"userType" json:"userType"`
	AccountType         AccountType      `firestore:"accountType" json:"accountType"`
	AccountStatus       AccountStatus    `firestore:"accountStatus" json:"accountStatus"`
	CreationEndpoint    CreationEndpoint `firestore:"creationEndpoint" json:"creationEndpoint"`
	CreatedBy           string           `firestore:"createdBy" json:"createdBy"`
	FirstName           string           `firestore:"firstName,omitempty" json:"firstName,omitempty"`
	LastName            string           `firestore:"lastName,omitempty" json:"lastName,omitempty"`
	DisplayName         string           `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	TempPassword        string           `firestore:"tempPassword,omitempty" json:"-"`
	PasswordGeneratedAt time.Time        `firestore:"passwordGeneratedAt,omitempty" json:"-"`
	CreatedAt           time.Time        `firestore:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time        `firestore:"updatedAt" json:"updatedAt"`
	FCMToken            string           `firestore:"fcmToken,omitempty" json:"-"`
	IsTripleHugger      string           `firestore:"is_triple_hugger,omitempty" json:"is_triple_hugger,omitempty"`
}
