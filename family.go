package kverrors

// Family groups kinds by the subsystem that produces them.
type Family string

const (
	// FamilyValidation covers errors raised by request validation.
	FamilyValidation Family = "validation"

	// FamilyKey covers key lookups and revision checks.
	FamilyKey Family = "key"

	// FamilyLease covers lease management.
	FamilyLease Family = "lease"

	// FamilyAuth covers authentication, users, roles and permissions.
	FamilyAuth Family = "auth"

	// FamilyInfrastructure covers storage engine failures.
	FamilyInfrastructure Family = "infrastructure"
)

// defaultFamilies maps each kind to its family.
var defaultFamilies = map[Kind]Family{
	KindInvalidRequest: FamilyValidation,

	KindKeyNotFound:       FamilyKey,
	KindRevisionTooLarge:  FamilyKey,
	KindRevisionCompacted: FamilyKey,

	KindLeaseNotFound:      FamilyLease,
	KindLeaseExpired:       FamilyLease,
	KindLeaseTTLTooLarge:   FamilyLease,
	KindLeaseAlreadyExists: FamilyLease,

	KindAuthNotEnabled:        FamilyAuth,
	KindAuthFailed:            FamilyAuth,
	KindUserNotFound:          FamilyAuth,
	KindUserAlreadyExists:     FamilyAuth,
	KindUserAlreadyHasRole:    FamilyAuth,
	KindNoPasswordUser:        FamilyAuth,
	KindRoleNotFound:          FamilyAuth,
	KindRoleAlreadyExists:     FamilyAuth,
	KindRoleNotGranted:        FamilyAuth,
	KindRootRoleNotExist:      FamilyAuth,
	KindPermissionNotGranted:  FamilyAuth,
	KindPermissionNotGiven:    FamilyAuth,
	KindPermissionDenied:      FamilyAuth,
	KindInvalidAuthManagement: FamilyAuth,
	KindInvalidAuthToken:      FamilyAuth,
	KindTokenManagerNotInit:   FamilyAuth,
	KindTokenNotProvided:      FamilyAuth,
	KindTokenOldRevision:      FamilyAuth,

	KindDBError: FamilyInfrastructure,
}

// Family returns the family the kind belongs to.
// Returns FamilyInfrastructure for kinds this release does not know.
func (k Kind) Family() Family {
	if f, ok := defaultFamilies[k]; ok {
		return f
	}
	return FamilyInfrastructure
}
