package service

// Ownership decides whose id a mutation runs as. When Enforce is false the
// ids in the request body are trusted and no token is needed.
type Ownership struct {
	Enforce bool
}

// actingAs resolves the effective user id for a write that names claimed
// (zero or nil when the body did not name one). caller is the token
// subject, nil for anonymous requests.
func (o Ownership) actingAs(caller *int64, claimed int64) (int64, error) {
	if !o.Enforce {
		return claimed, nil
	}
	if caller == nil {
		return 0, ErrUnauthenticated
	}
	if claimed != 0 && claimed != *caller {
		return 0, ErrForbidden
	}
	return *caller, nil
}

// mayModify reports whether caller can change a row owned by owner.
func (o Ownership) mayModify(caller *int64, owner *int64) error {
	if !o.Enforce {
		return nil
	}
	if caller == nil {
		return ErrUnauthenticated
	}
	if owner == nil || *owner != *caller {
		return ErrForbidden
	}
	return nil
}
