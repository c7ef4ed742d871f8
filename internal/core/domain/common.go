package domain

// EntityID is an opaque identifier assigned by a repository when a record is
// first persisted. The empty string means "not yet persisted"; adapters may
// encode sequential integers or UUIDs behind it.
type EntityID string

// IsZero reports whether the identity has not been assigned yet.
func (id EntityID) IsZero() bool {
	return id == ""
}

func (id EntityID) String() string {
	return string(id)
}

// AccountRef links a transaction to its account, either by bare identity or
// by an embedded account snapshot. Exactly one of the two is set.
type AccountRef struct {
	id      EntityID
	account *Account
}

// AccountRefByID builds a reference carrying only the account identity.
func AccountRefByID(id EntityID) AccountRef {
	return AccountRef{id: id}
}

// AccountRefByValue builds a reference embedding the account itself.
func AccountRefByValue(account *Account) AccountRef {
	return AccountRef{account: account}
}

// ResolveID extracts the account identity from the reference. The second
// return is false when the reference is unresolvable: an embedded account
// that was never persisted, or an empty reference.
func (r AccountRef) ResolveID() (EntityID, bool) {
	if r.account != nil {
		if r.account.ID.IsZero() {
			return "", false
		}
		return r.account.ID, true
	}
	if r.id.IsZero() {
		return "", false
	}
	return r.id, true
}

// Account returns the embedded account snapshot, or nil for a by-id reference.
func (r AccountRef) Account() *Account {
	return r.account
}
